package repository

import (
	"log"
	"strings"
)

// ตาราง/คอลัมน์ยังไม่ migrate = ปัญหา setup ไม่ใช่ data error
// read path คืน empty set แทนการพัง (sqlite: "no such table", postgres: 42P01)
func isSchemaMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "SQLSTATE 42P01")
}

// ใช้กับ list query: schema หาย → log แล้วคืน nil ให้ caller ได้ []
func degradeSchemaMissing(err error, table string) error {
	if isSchemaMissing(err) {
		log.Printf("⚠️ schema missing for %s (run migrations): %v", table, err)
		return nil
	}
	return err
}
