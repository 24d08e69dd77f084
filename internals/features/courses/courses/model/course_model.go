package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CourseModel is keyed by the human-readable course code (e.g. "CS2103-2014").
type CourseModel struct {
	CourseID       string `gorm:"type:varchar(64);primaryKey;column:course_id" json:"course_id"`
	CourseName     string `gorm:"type:varchar(160);not null;column:course_name" json:"course_name"`
	CourseTimeZone string `gorm:"type:varchar(64);not null;default:'UTC';column:course_time_zone" json:"course_time_zone"`

	CourseCreatedAt time.Time      `gorm:"type:timestamptz;column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"type:timestamptz;column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

// CourseStudentModel is one enrollment. The email is the identity used as
// giver on feedback responses within the course.
type CourseStudentModel struct {
	CourseStudentID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_student_id" json:"course_student_id"`
	CourseStudentCourseID  string     `gorm:"type:varchar(64);not null;uniqueIndex:uq_course_student_email;column:course_student_course_id" json:"course_student_course_id"`
	CourseStudentAccountID *uuid.UUID `gorm:"type:uuid;index;column:course_student_account_id" json:"course_student_account_id,omitempty"`
	CourseStudentEmail     string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_course_student_email;column:course_student_email" json:"course_student_email"`
	CourseStudentName      string     `gorm:"type:varchar(120);not null;column:course_student_name" json:"course_student_name"`
	CourseStudentTeam      *string    `gorm:"type:varchar(80);column:course_student_team" json:"course_student_team,omitempty"`
	CourseStudentSection   *string    `gorm:"type:varchar(80);column:course_student_section" json:"course_student_section,omitempty"`

	CourseStudentCreatedAt time.Time      `gorm:"type:timestamptz;column:course_student_created_at;autoCreateTime" json:"course_student_created_at"`
	CourseStudentUpdatedAt time.Time      `gorm:"type:timestamptz;column:course_student_updated_at;autoUpdateTime" json:"course_student_updated_at"`
	CourseStudentDeletedAt gorm.DeletedAt `gorm:"column:course_student_deleted_at;index" json:"course_student_deleted_at,omitempty"`
}

func (CourseStudentModel) TableName() string { return "course_students" }
