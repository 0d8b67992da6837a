package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"sort"
)

// UserIDSet เป็น set ของ user id เก็บลงคอลัมน์ JSON
// (ใช้กับ voted_by และ reactions)
type UserIDSet []uint

func (s UserIDSet) Has(userID uint) bool {
	for _, id := range s {
		if id == userID {
			return true
		}
	}
	return false
}

func (s UserIDSet) Add(userID uint) UserIDSet {
	if s.Has(userID) {
		return s
	}
	out := append(UserIDSet{}, s...)
	out = append(out, userID)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s UserIDSet) Remove(userID uint) UserIDSet {
	out := make(UserIDSet, 0, len(s))
	for _, id := range s {
		if id != userID {
			out = append(out, id)
		}
	}
	return out
}

// Toggle สลับสถานะ: มีอยู่ → เอาออก, ไม่มี → ใส่เข้า
func (s UserIDSet) Toggle(userID uint) (UserIDSet, bool) {
	if s.Has(userID) {
		return s.Remove(userID), false
	}
	return s.Add(userID), true
}

func (s UserIDSet) Value() (driver.Value, error) {
	if s == nil {
		s = UserIDSet{}
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *UserIDSet) Scan(value any) error {
	if value == nil {
		*s = UserIDSet{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for UserIDSet")
	}
	if len(b) == 0 {
		*s = UserIDSet{}
		return nil
	}
	return json.Unmarshal(b, s)
}

// ReactionMap: สัญลักษณ์ emoji -> set ของ user id ที่กด
type ReactionMap map[string]UserIDSet

// Toggle กด/ยกเลิก reaction; ลบ key ทิ้งเมื่อไม่เหลือใครกด
func (m ReactionMap) Toggle(symbol string, userID uint) ReactionMap {
	out := ReactionMap{}
	for k, v := range m {
		out[k] = v
	}
	set, _ := out[symbol].Toggle(userID)
	if len(set) == 0 {
		delete(out, symbol)
	} else {
		out[symbol] = set
	}
	return out
}

func (m ReactionMap) Value() (driver.Value, error) {
	if m == nil {
		m = ReactionMap{}
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *ReactionMap) Scan(value any) error {
	if value == nil {
		*m = ReactionMap{}
		return nil
	}
	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("unsupported type for ReactionMap")
	}
	if len(b) == 0 {
		*m = ReactionMap{}
		return nil
	}
	return json.Unmarshal(b, m)
}
