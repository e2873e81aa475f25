package specification

import "gorm.io/gorm"

// ByStudentID scopes notes to their parent student. Combined with ByID it
// forms the joint match used by note update/delete: a note id that exists
// under a different student must not resolve.
type ByStudentID struct {
	StudentID int64
}

func (s ByStudentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("student_id = ?", s.StudentID)
}
