package controller

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/configs"
	"schoolquiz_backend/internals/constants"
	"schoolquiz_backend/internals/features/school/questions/dto"
	"schoolquiz_backend/internals/features/school/questions/service"
	helper "schoolquiz_backend/internals/helpers"
	featuresMiddleware "schoolquiz_backend/internals/middlewares/features"
)

type QuestionController struct {
	DB        *gorm.DB
	service   *service.QuestionService
	validator *validator.Validate
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db, service: service.NewQuestionService(db), validator: helper.NewValidator()}
}

func (qc *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var req dto.CreateQuestionRequest
	if err := helper.BindJSON(c, qc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonCreated(c, qc.service.CreateQuestion(c.UserContext(), req, actorID))
}

func (qc *QuestionController) GetQuestion(c *fiber.Ctx) error {
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, qc.service.GetQuestion(c.UserContext(), id))
}

// GET /quizzes/:quiz_id/questions?page=&search=&since=&paginate=
func (qc *QuestionController) GetQuestions(c *fiber.Ctx) error {
	quizID, err := helper.ParamUint(c, "quiz_id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid quiz id")
	}
	return helper.JsonFeedback(c, qc.service.GetQuestions(c.UserContext(), listQuery(c, quizID)))
}

// GET /api/s/quizzes/:quiz_id/questions lists what the student has left to answer.
func (qc *QuestionController) GetStudentQuestions(c *fiber.Ctx) error {
	quizID, err := helper.ParamUint(c, "quiz_id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid quiz id")
	}
	if featuresMiddleware.QuizID(c) != quizID {
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid quiz token")
	}
	studentID, err := featuresMiddleware.StudentID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Student record not found")
	}

	q := listQuery(c, quizID)
	q.Viewer = dto.QuestionViewer{Type: constants.UserTypeStudent, StudentID: studentID}
	return helper.JsonFeedback(c, qc.service.GetQuestions(c.UserContext(), q))
}

func listQuery(c *fiber.Ctx, quizID uint) dto.ListQuestionsQuery {
	return dto.ListQuestionsQuery{
		Page:     helper.QueryPage(c),
		QuizID:   quizID,
		Search:   c.Query("search"),
		Paginate: helper.QueryBool(c, "paginate", true),
		Since:    int64(c.QueryInt("since", 0)),
	}
}

func (qc *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	var req dto.UpdateQuestionRequest
	if err := helper.BindJSON(c, qc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, qc.service.UpdateQuestion(c.UserContext(), id, req, actorID))
}

func (qc *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, qc.service.DeleteQuestion(c.UserContext(), id, actorID))
}

/* ===============================
   Options
=================================*/

// POST /questions/:id/options
func (qc *QuestionController) CreateOption(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	var req dto.CreateOptionRequest
	req.QuestionID = id
	if err := helper.BindJSON(c, qc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	req.QuestionID = id
	return helper.JsonCreated(c, qc.service.CreateQuestionOption(c.UserContext(), req, actorID))
}

func (qc *QuestionController) UpdateOption(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	var req dto.UpdateOptionRequest
	if err := helper.BindJSON(c, qc.validator, &req); err != nil {
		return helper.JsonBindError(c, err)
	}
	return helper.JsonFeedback(c, qc.service.UpdateQuestionOption(c.UserContext(), id, req, actorID))
}

func (qc *QuestionController) DeleteOption(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := helper.ParamUint(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid id")
	}
	return helper.JsonFeedback(c, qc.service.DeleteQuestionOption(c.UserContext(), id, actorID))
}

/* ===============================
   Upload
=================================*/

// POST /quizzes/:quiz_id/questions/upload (multipart field "file", .xlsx or .csv)
func (qc *QuestionController) UploadQuestions(c *fiber.Ctx) error {
	actorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	quizID, err := helper.ParamUint(c, "quiz_id")
	if err != nil {
		return helper.JsonAppError(c, err, "Invalid quiz id")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "A question sheet is required in field 'file'")
	}
	if constants.DetectSheetTypeFromExt(fh.Filename) == constants.SheetUnknown {
		return helper.JsonError(c, fiber.StatusBadRequest, service.ErrUnsupportedSheet.Error())
	}

	dir := configs.GetEnv("UPLOAD_DIR", os.TempDir())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Error("create upload dir", "dir", dir, "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unable to store upload")
	}
	path := filepath.Join(dir, uuid.NewString()+strings.ToLower(filepath.Ext(fh.Filename)))
	if err := c.SaveFile(fh, path); err != nil {
		slog.Error("save question sheet", "path", path, "err", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Unable to store upload")
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			slog.Warn("remove question sheet", "path", path, "err", err)
		}
	}()

	return helper.JsonFeedback(c, qc.service.ProcessQuestionUpload(c.UserContext(), quizID, path, actorID))
}
