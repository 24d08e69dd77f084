package constants

import "fmt"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Role error templates
const (
	ErrOnlyStudentsCanAccess    = "Only students may access %s."
	ErrOnlyInstructorsCanAccess = "Only instructors may access %s."
)

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

func RoleErrorInstructor(feature string) string {
	return fmt.Sprintf(ErrOnlyInstructorsCanAccess, feature)
}

var (
	AllRoles = []string{
		RoleStudent,
		RoleInstructor,
		RoleAdmin,
	}

	StudentHomeRoles = []string{
		RoleStudent,
		RoleInstructor,
	}
)
