package http

import (
	"net/http"

	contribUC "sacco-backend/internal/usecase/contribution"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ContributionHandler struct{ uc *contribUC.Usecase }

func NewContributionHandler(uc *contribUC.Usecase) *ContributionHandler {
	return &ContributionHandler{uc: uc}
}

type createContributionReq struct {
	MemberID string `json:"member_id" validate:"required,hex32"`
	Amount   string `json:"amount"    validate:"required,dec2"`
	Method   string `json:"method"    validate:"required"`
}

func (h *ContributionHandler) CreateContribution(c echo.Context) error {
	var req createContributionReq
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
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid amount", Kind: "validation"})
	}

	out, err := h.uc.Create(c.Request().Context(), contribUC.CreateInput{
		MemberID: req.MemberID,
		Amount:   amount,
		Method:   req.Method,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ContributionHandler) VerifyContribution(c echo.Context) error {
	out, err := h.uc.Verify(c.Request().Context(), c.Param("contribution_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContributionHandler) RejectContribution(c echo.Context) error {
	out, err := h.uc.Reject(c.Request().Context(), c.Param("contribution_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ContributionHandler) ListMemberContributions(c echo.Context) error {
	out, err := h.uc.ListForMember(c.Request().Context(), c.Param("member_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
