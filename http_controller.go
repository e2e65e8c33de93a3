package staff

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"
)

// ActorResolver maps a transport session to the acting principal
type ActorResolver func(router.Context) (ActorRef, bool)

// ActorMiddleware stores the resolved acting principal in the request
// context so mutating handlers can stamp audit fields. The resolver must
// source the actor from the authenticated session, never from the body.
func ActorMiddleware(resolve ActorResolver) router.MiddlewareFunc {
	return func(hf router.HandlerFunc) router.HandlerFunc {
		return func(ctx router.Context) error {
			if actor, ok := resolve(ctx); ok {
				ctx.SetContext(WithActor(ctx.Context(), actor))
			}
			return hf(ctx)
		}
	}
}

// RegisterEmployeeRoutes mounts the admin employee endpoints
func RegisterEmployeeRoutes[T any](app router.Router[T], opts ...EmployeeControllerOption) {

	controller := NewEmployeeController(opts...)

	app.Post(controller.Routes.Login, controller.Login).
		SetName("employee-login.post")

	app.Post(controller.Routes.Employees, controller.Create).
		SetName("employee-create.post")

	app.Get(controller.Routes.Employees, controller.Page).
		SetName("employee-page.get")

	app.Get(fmt.Sprintf("%s/:id", controller.Routes.Employees), controller.GetByID).
		SetName("employee-get.get")

	app.Post(fmt.Sprintf("%s/:id/status/:status", controller.Routes.Employees), controller.SetStatus).
		SetName("employee-status.post")
}

type EmployeeControllerRoutes struct {
	Login     string
	Employees string
}

type EmployeeController struct {
	Debug           bool
	Logger          Logger
	Repo            RepositoryManager
	Auther          Authenticator
	Hasher          PasswordHasher
	DefaultPassword string
	Routes          *EmployeeControllerRoutes
}

type EmployeeControllerOption func(*EmployeeController) *EmployeeController

func NewEmployeeController(opts ...EmployeeControllerOption) *EmployeeController {
	c := &EmployeeController{
		Logger:          defLogger{},
		Hasher:          &BcryptHasher{},
		DefaultPassword: DefaultPassword,
		Routes: &EmployeeControllerRoutes{
			Login:     "/employees/login",
			Employees: "/employees",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in employee controller...")
	}

	if c.Auther == nil {
		c.Auther = NewAuthenticator(c.Repo.Employees()).WithHasher(c.Hasher)
	}

	return c
}

// EmployeeResponse is the transport shape of an account. The password hash
// never leaves the core through this DTO.
type EmployeeResponse struct {
	ID        uuid.UUID      `json:"id"`
	Username  string         `json:"username"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone_number,omitempty"`
	Sex       string         `json:"sex,omitempty"`
	IDNumber  string         `json:"id_number,omitempty"`
	Status    EmployeeStatus `json:"status"`
	CreatedAt *time.Time     `json:"created_at,omitempty"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

func employeeResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		Username:  e.Username,
		Name:      e.Name,
		Phone:     e.Phone,
		Sex:       e.Sex,
		IDNumber:  e.IDNumber,
		Status:    e.Status,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// LoginRequest payload
type LoginRequest struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Username,
			validation.Required,
			validation.Length(1, 32),
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

func (a *EmployeeController) Login(ctx router.Context) error {
	payload := new(LoginRequest)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("employee login parse payload: ", "error", err)
		return a.renderError(ctx, goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse login payload").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return ctx.JSON(fiber.StatusBadRequest, router.ViewContext{
			"validation": formatValidationErrors(err),
		})
	}

	employee, err := a.Auther.Authenticate(ctx.Context(), payload.Username, payload.Password)
	if err != nil {
		return a.renderError(ctx, err)
	}

	if a.Debug {
		fmt.Println(print.MaybePrettyJSON(employeeResponse(employee)))
	}

	return ctx.JSON(fiber.StatusOK, employeeResponse(employee))
}

// CreateEmployeePayload is the admin create form payload. Any status or
// password fields in the body are ignored: provisioning forces both.
type CreateEmployeePayload struct {
	Username string `form:"username" json:"username"`
	Name     string `form:"name" json:"name"`
	Phone    string `form:"phone_number" json:"phone_number"`
	Sex      string `form:"sex" json:"sex"`
	IDNumber string `form:"id_number" json:"id_number"`
}

// Validate will validate the payload
func (r CreateEmployeePayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(1, 32)),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Phone, validation.Length(10, 11), is.Digit),
		validation.Field(&r.Sex, validation.In("0", "1")),
		validation.Field(&r.IDNumber, validation.Length(6, 32)),
	)
}

func (a *EmployeeController) Create(ctx router.Context) error {
	payload := new(CreateEmployeePayload)

	if err := ctx.Bind(payload); err != nil {
		a.Logger.Error("create employee parse payload: ", "error", err)
		return a.renderError(ctx, goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse employee payload").
			WithCode(goerrors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Error("create employee validate payload: ", "error", err)
		return ctx.JSON(fiber.StatusBadRequest, router.ViewContext{
			"validation": formatValidationErrors(err),
		})
	}

	var res *CreateEmployeeResponse

	req := CreateEmployeeMessage{
		Username: payload.Username,
		Name:     payload.Name,
		Phone:    payload.Phone,
		Sex:      payload.Sex,
		IDNumber: payload.IDNumber,
		OnResponse: func(resp *CreateEmployeeResponse) {
			res = resp
		},
	}

	createEmployee := NewCreateEmployeeHandler(a.Repo,
		WithHasher(a.Hasher),
		WithDefaultPassword(a.DefaultPassword),
	)

	if err := createEmployee.Execute(ctx.Context(), req); err != nil {
		a.Logger.Error("create employee error: ", "error", err)
		return a.renderError(ctx, err)
	}

	return ctx.JSON(fiber.StatusCreated, res)
}

func (a *EmployeeController) GetByID(ctx router.Context) error {
	id := ctx.Param("id", "")

	employee, err := a.Repo.Employees().GetByID(ctx.Context(), id)
	if err != nil {
		if repository.IsRecordNotFound(err) || goerrors.IsNotFound(err) {
			return a.renderError(ctx, ErrEmployeeNotFound)
		}
		return a.renderError(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, employeeResponse(employee))
}

func (a *EmployeeController) Page(ctx router.Context) error {
	query := EmployeePageQuery{
		Page:     ctx.QueryInt("page", 1),
		PageSize: ctx.QueryInt("page_size", DefaultPageSize),
		Name:     ctx.Query("name", ""),
	}

	result, err := a.Repo.Employees().Search(ctx.Context(), query)
	if err != nil {
		return a.renderError(ctx, err)
	}

	records := make([]EmployeeResponse, len(result.Records))
	for i, e := range result.Records {
		records[i] = employeeResponse(e)
	}

	return ctx.JSON(fiber.StatusOK, router.ViewContext{
		"total":   result.Total,
		"records": records,
	})
}

func (a *EmployeeController) SetStatus(ctx router.Context) error {
	id, err := uuid.Parse(ctx.Param("id", ""))
	if err != nil {
		return a.renderError(ctx, goerrors.Wrap(err, goerrors.CategoryBadInput, "invalid employee id").
			WithCode(goerrors.CodeBadRequest))
	}

	status, ok := ParseStatus(ctx.Param("status", ""))
	if !ok {
		return a.renderError(ctx, ErrInvalidStatus)
	}

	setStatus := NewSetEmployeeStatusHandler(a.Repo)

	if err := setStatus.Execute(ctx.Context(), SetEmployeeStatusMessage{ID: id, Status: status}); err != nil {
		a.Logger.Error("set employee status error: ", "error", err)
		return a.renderError(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, router.ViewContext{
		"id":     id,
		"status": status,
	})
}

func (a *EmployeeController) renderError(ctx router.Context, err error) error {
	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		richErr = goerrors.Wrap(err, goerrors.CategoryInternal, "An unexpected server error occurred").
			WithCode(goerrors.CodeInternal)
	}

	a.Logger.Error("employee controller error",
		"error", richErr.Message,
		"category", richErr.Category,
		"text_code", richErr.TextCode,
	)

	code := richErr.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}

	return ctx.JSON(code, router.ViewContext{
		"error": richErr.Message,
		"code":  richErr.TextCode,
	})
}

func formatValidationErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		for field, ferr := range verrs {
			if ferr != nil {
				out[field] = ferr.Error()
			}
		}
		return out
	}

	out["payload"] = err.Error()
	return out
}
