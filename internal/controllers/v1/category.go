package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thucthuc0607-code/SmartFin-2/internal/httputil"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

type Categories struct {
	Expense         []string            `json:"expense" example:"Ăn uống,Di chuyển"` // Categories for expenses
	Income          []string            `json:"income" example:"Lương,Thưởng"`       // Categories for income
	Bill            string              `json:"bill" example:"Hóa đơn"`              // The bill category. Bills only count towards the monthly budget
	Other           string              `json:"other" example:"Khác"`                // The catch-all category
	NoteSuggestions map[string][]string `json:"noteSuggestions"`                     // Quick-pick notes per category
}

type CategoriesResponse struct {
	Data Categories `json:"data"` // Data for the categories
}

func RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCategories)
	r.GET("", GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get categories
// @Description	Returns the category sets for expenses and income
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	CategoriesResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{
		Data: Categories{
			Expense:         models.ExpenseCategories,
			Income:          models.IncomeCategories,
			Bill:            models.BillCategory,
			Other:           models.OtherCategory,
			NoteSuggestions: models.NoteSuggestions,
		},
	})
}
