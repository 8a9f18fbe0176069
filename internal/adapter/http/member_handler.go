package http

import (
	"net/http"

	limitUC "sacco-backend/internal/usecase/limit"
	memberUC "sacco-backend/internal/usecase/member"

	"github.com/labstack/echo/v4"
)

type MemberHandler struct {
	uc     *memberUC.Usecase
	limits *limitUC.Usecase
}

func NewMemberHandler(uc *memberUC.Usecase, limits *limitUC.Usecase) *MemberHandler {
	return &MemberHandler{uc: uc, limits: limits}
}

type registerMemberReq struct {
	Name  string `json:"name"  validate:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (h *MemberHandler) RegisterMember(c echo.Context) error {
	var req registerMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Kind: "validation"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Kind:    "validation",
			Details: ToFieldErrors(err),
		})
	}
	m, err := h.uc.Register(c.Request().Context(), memberUC.RegisterInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *MemberHandler) GetMember(c echo.Context) error {
	m, err := h.uc.Get(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

// GetMemberLimit recomputes the borrowing ceiling from current ledger state.
func (h *MemberHandler) GetMemberLimit(c echo.Context) error {
	lim, err := h.limits.Compute(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, lim)
}
