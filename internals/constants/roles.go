package constants

import "fmt"

// UserType is the role stored on users.type.
type UserType string

const (
	UserTypeAdmin   UserType = "admin"
	UserTypeTeacher UserType = "teacher"
	UserTypeStudent UserType = "student"
)

func (t UserType) String() string { return string(t) }

func (t UserType) Valid() bool {
	return t == UserTypeAdmin || t == UserTypeTeacher || t == UserTypeStudent
}

// Role groups used by route guards
var (
	AdminOnly      = []string{UserTypeAdmin.String()}
	TeacherAndUp   = []string{UserTypeAdmin.String(), UserTypeTeacher.String()}
	StudentOnly    = []string{UserTypeStudent.String()}
	AllSignedRoles = []string{UserTypeAdmin.String(), UserTypeTeacher.String(), UserTypeStudent.String()}
)

// Template for role errors
const (
	ErrOnlyTeachersCanAccess = "Only teachers or admins can access %s."
	ErrOnlyAdminsCanAccess   = "Only admins can access %s."
	ErrOnlyStudentsCanAccess = "Only students can access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStudent(feature string) string {
	return fmt.Sprintf(ErrOnlyStudentsCanAccess, feature)
}

// Defaults
const (
	DefaultAvatar      = "./assets/imgs/avatar.png"
	DefaultAdminEmail  = "admin@app.com"
	DefaultAdminPass   = "admin"
	QuestionTimeoutSec = 30
	QuestionScore      = 1
)

// Seeded levels
var DefaultLevels = []string{"ND1", "ND2", "HND1", "HND2"}
