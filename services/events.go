package services

const (
	EventInsert = "insert"
	EventUpdate = "update"
	EventDelete = "delete"
)

// EventPublisher กระจาย change event ให้ client ที่ subscribe ตารางนั้นอยู่
// (spotID = 0 หมายถึง event ไม่ผูกกับ spot ไหน)
// publish ล้มเหลวต้องไม่กระทบผลของ write หลัก
type EventPublisher interface {
	Publish(table, event string, spotID uint, row any)
}

type nopPublisher struct{}

func (nopPublisher) Publish(table, event string, spotID uint, row any) {}

func orNop(ev EventPublisher) EventPublisher {
	if ev == nil {
		return nopPublisher{}
	}
	return ev
}
