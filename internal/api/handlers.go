package api

import (
	"errors"
	"net/http"
	"time"

	"coin-board/internal/denomination"
	"coin-board/internal/middleware"
	"coin-board/internal/service"
	"coin-board/pkg"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthService     service.AuthService
	BoardService    service.BoardService
	CampaignService service.CampaignService
	Logger          pkg.Logger
	JWTSecret       string
}

func RegisterHandlers(e *echo.Echo, h *Handlers) {
	e.POST("/api/auth", h.PostApiAuth)
	e.POST("/api/donate", h.PostApiDonate)
	e.GET("/api/board", h.GetApiBoard)
	e.GET("/api/campaign", h.GetApiCampaign)
	e.POST("/api/coins/:id/collect", h.PostApiCollectCoin)

	admin := e.Group("/api/board", middleware.JWTAuthMiddleware(h.JWTSecret, h.Logger))
	admin.POST("/reset", h.PostApiResetBoard)
}

func (h *Handlers) PostApiAuth(ctx echo.Context) error {
	var req AuthRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr("Invalid request body")})
	}

	token, err := h.AuthService.Authenticate(req.Username, req.Password)
	if err != nil {
		h.Logger.Warn("invalid credentials", zap.String("username", req.Username), zap.Error(err))
		return ctx.JSON(http.StatusUnauthorized, ErrorResponse{Errors: ptr("Invalid credentials")})
	}
	return ctx.JSON(http.StatusOK, AuthResponse{Token: &token})
}

func (h *Handlers) PostApiDonate(ctx echo.Context) error {
	var req DonateRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr("Invalid request body")})
	}

	receipt, err := h.BoardService.Donate(req.Donor, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr("Amount must be > 0")})
		}
		if errors.Is(err, service.ErrCampaignNotRunning) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr("Campaign is not running")})
		}
		h.Logger.Error("failed to process donation", zap.String("donor", req.Donor), zap.Float64("amount", req.Amount), zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Errors: ptr("Internal server error")})
	}

	return ctx.JSON(http.StatusOK, DonateResponse{
		Donor:     receipt.Donor,
		Amount:    receipt.Amount,
		Allocated: receipt.Allocated,
		Remainder: receipt.Remainder,
		Coins:     convertCoins(receipt.Coins),
	})
}

func (h *Handlers) GetApiBoard(ctx echo.Context) error {
	info, err := h.BoardService.BoardState()
	if err != nil {
		h.Logger.Error("failed to get board state", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Errors: ptr("Internal server error")})
	}

	return ctx.JSON(http.StatusOK, BoardResponse{
		TotalValue:   info.TotalValue,
		DonatedTotal: info.DonatedTotal,
		Coins:        convertCoins(info.Coins),
	})
}

func (h *Handlers) GetApiCampaign(ctx echo.Context) error {
	c := h.CampaignService.Countdown(time.Now())
	return ctx.JSON(http.StatusOK, CampaignResponse{
		Phase:   string(c.Phase),
		Days:    c.Days,
		Hours:   c.Hours,
		Minutes: c.Minutes,
		Seconds: c.Seconds,
		Display: c.Display,
	})
}

func (h *Handlers) PostApiCollectCoin(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Errors: ptr("Invalid coin id")})
	}

	collected, err := h.BoardService.CollectCoin(id)
	if err != nil {
		h.Logger.Error("failed to collect coin", zap.String("coinID", id.String()), zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Errors: ptr("Internal server error")})
	}

	// повторное уведомление о сборе не ошибка
	return ctx.JSON(http.StatusOK, CollectResponse{Collected: collected})
}

func (h *Handlers) PostApiResetBoard(ctx echo.Context) error {
	if err := h.BoardService.ResetBoard(); err != nil {
		h.Logger.Error("failed to reset board", zap.Error(err))
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Errors: ptr("Internal server error")})
	}
	return ctx.JSON(http.StatusOK, map[string]string{"message": "Board reset successfully"})
}

func convertCoins(coins []denomination.IssuedCoin) []CoinResponse {
	out := make([]CoinResponse, 0, len(coins))
	for _, c := range coins {
		out = append(out, CoinResponse{
			ID:     c.ID.String(),
			Value:  c.Value,
			Sprite: c.Sprite,
		})
	}
	return out
}

func ptr(s string) *string {
	return &s
}
