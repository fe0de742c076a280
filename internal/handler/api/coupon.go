package api

import (
	"net/http"

	resdto "court-connect-server/internal/handler/dto/response"
	"court-connect-server/internal/handler/httperr"
	"court-connect-server/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CouponHandler struct {
	couponQueries queries.CouponQueries
}

func NewCouponHandler(couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		couponQueries: couponQueries,
	}
}

// @Summary Validate coupon
// @Description Check a code's existence and expiry; negative results are 200 with isValid false
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param code path string true "Coupon code"
// @Success 200 {object} resdto.CouponValidationResponse
// @Router /coupons/{code} [get]
func (h *CouponHandler) ValidateCoupon(c *gin.Context) {
	result, err := h.couponQueries.Validate(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCouponValidation(result))
}
