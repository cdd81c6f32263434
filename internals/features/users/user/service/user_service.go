package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
	activityService "schoolquiz_backend/internals/features/users/activities/service"
	adminModel "schoolquiz_backend/internals/features/users/admins/model"
	studentModel "schoolquiz_backend/internals/features/users/students/model"
	teacherModel "schoolquiz_backend/internals/features/users/teachers/model"
	"schoolquiz_backend/internals/features/users/user/dto"
	"schoolquiz_backend/internals/features/users/user/model"
	helper "schoolquiz_backend/internals/helpers"
	helperAuth "schoolquiz_backend/internals/helpers/auth"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

/* ===============================
   Shared building blocks
=================================*/

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailTaken reports whether a user other than exceptID owns email. Deleted
// accounts keep their address, matching idx_users_email.
func EmailTaken(ctx context.Context, db *gorm.DB, email string, exceptID uint) (bool, error) {
	q := db.WithContext(ctx).Unscoped().Model(&model.UserModel{}).Where("email = ?", NormalizeEmail(email))
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// NewAccount hashes password and inserts a user of type t.
func NewAccount(ctx context.Context, tx *gorm.DB, surname, othernames, email, password string, t constants.UserType) (*model.UserModel, error) {
	hash, err := helperAuth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &model.UserModel{
		Surname:    strings.TrimSpace(surname),
		Othernames: strings.TrimSpace(othernames),
		Email:      NormalizeEmail(email),
		Password:   hash,
		Type:       t,
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}

// AccountUpdates is the user-side part of an admin/teacher/student update.
type AccountUpdates struct {
	Surname    *string
	Othernames *string
	Email      *string
	Password   *string
}

// ApplyAccountUpdates writes the non-nil fields to userID, checking email
// uniqueness and re-hashing a new password.
func ApplyAccountUpdates(ctx context.Context, tx *gorm.DB, userID uint, up AccountUpdates) error {
	m := map[string]any{}
	if up.Surname != nil {
		m["surname"] = strings.TrimSpace(*up.Surname)
	}
	if up.Othernames != nil {
		m["othernames"] = strings.TrimSpace(*up.Othernames)
	}
	if up.Email != nil {
		email := NormalizeEmail(*up.Email)
		taken, err := EmailTaken(ctx, tx, email, userID)
		if err != nil {
			return err
		}
		if taken {
			return helper.Conflict("Email already exists.")
		}
		m["email"] = email
	}
	if up.Password != nil && *up.Password != "" {
		hash, err := helperAuth.HashPassword(*up.Password)
		if err != nil {
			return err
		}
		m["password"] = hash
	}
	if len(m) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", userID).Updates(m).Error
}

/* ===============================
   Operations
=================================*/

// FindUser loads the bare user row, password hash included.
func (s *UserService) FindUser(ctx context.Context, filter dto.UserFilter) (*model.UserModel, error) {
	q := s.DB.WithContext(ctx)
	switch {
	case filter.ID != 0:
		q = q.Where("id = ?", filter.ID)
	case filter.Email != "":
		q = q.Where("email = ?", NormalizeEmail(filter.Email))
	default:
		return nil, gorm.ErrRecordNotFound
	}
	var u model.UserModel
	if err := q.First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser returns the user with its role record, or nil when it cannot be loaded.
func (s *UserService) GetUser(ctx context.Context, filter dto.UserFilter) *dto.UserProfile {
	u, err := s.FindUser(ctx, filter)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.ErrorContext(ctx, "get user", "err", err)
		}
		return nil
	}

	p := &dto.UserProfile{UserModel: *u}
	db := s.DB.WithContext(ctx)

	switch u.Type {
	case constants.UserTypeAdmin:
		var a adminModel.AdminModel
		if err := db.Where("user_id = ?", u.ID).First(&a).Error; err == nil {
			p.Admin = &a
		}
	case constants.UserTypeTeacher:
		var t teacherModel.TeacherModel
		if err := db.Preload("Department").Where("user_id = ?", u.ID).First(&t).Error; err == nil {
			p.Teacher = &t
		}
	case constants.UserTypeStudent:
		var st studentModel.StudentModel
		if err := db.Preload("Department").Preload("Level").Where("user_id = ?", u.ID).First(&st).Error; err == nil {
			p.Student = &st
		}
	}
	return p
}

func (s *UserService) UpdateUser(ctx context.Context, id uint, req dto.UpdateUserRequest) helper.Feedback {
	req.Normalize()
	updates := req.Updates()
	if len(updates) == 0 {
		return helper.FailStatus(http.StatusBadRequest, "Nothing to update")
	}

	res := s.DB.WithContext(ctx).Model(&model.UserModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return helper.FromError(res.Error, "Unable to update profile")
	}
	if res.RowsAffected == 0 {
		return helper.FailStatus(http.StatusNotFound, "User record not found")
	}

	activityService.Record(ctx, s.DB, id, "updated profile", nil)
	return helper.Ok("Profile updated", s.GetUser(ctx, dto.UserFilter{ID: id}))
}

// MatchingUserIDs is a subquery of user ids whose surname or othernames contain search.
func MatchingUserIDs(db *gorm.DB, search string) *gorm.DB {
	p := helper.LikePattern(search)
	return db.Model(&model.UserModel{}).
		Select("id").
		Where("LOWER(surname) LIKE ? OR LOWER(othernames) LIKE ?", p, p)
}

// DeleteAccount soft-deletes the user row of a removed admin, teacher or student.
func DeleteAccount(ctx context.Context, tx *gorm.DB, userID uint) error {
	return tx.WithContext(ctx).Delete(&model.UserModel{}, userID).Error
}
