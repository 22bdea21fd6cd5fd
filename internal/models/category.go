package models

import (
	"golang.org/x/exp/slices"
)

// BillCategory is the expense category for recurring utility-style payments.
// It counts towards the monthly budget only.
const BillCategory = "Hóa đơn"

// OtherCategory is the catch-all category of both category sets.
const OtherCategory = "Khác"

var (
	ExpenseCategories = []string{"Ăn uống", "Di chuyển", "Mua sắm", "Giải trí", BillCategory, "Sức khỏe", "Giáo dục", OtherCategory}
	IncomeCategories  = []string{"Lương", "Thưởng", "Bán đồ", "Lãi tiết kiệm", "Được tặng", OtherCategory}
)

// NoteSuggestions are quick-pick notes per category.
var NoteSuggestions = map[string][]string{
	"Ăn uống":     {"Ăn sáng", "Ăn trưa", "Ăn tối", "Cafe", "Nhậu", "Trà sữa"},
	"Di chuyển":   {"Xăng xe", "Grab/Be", "Gửi xe", "Vé xe", "Sửa xe"},
	"Mua sắm":     {"Quần áo", "Mỹ phẩm", "Đồ gia dụng", "Siêu thị", "Tiki/Shopee"},
	"Giải trí":    {"Xem phim", "Netflix", "Game", "Du lịch"},
	BillCategory:  {"Tiền điện", "Tiền nước", "Internet", "Điện thoại"},
	"Sức khỏe":    {"Thuốc", "Khám bệnh", "Gym", "Yoga"},
	"Lương":       {},
	"Thưởng":      {},
	"Bán đồ":      {},
	OtherCategory: {},
}

// CategoriesFor returns the category set for a transaction type.
func CategoriesFor(t TransactionType) []string {
	if t == TypeIncome {
		return IncomeCategories
	}
	return ExpenseCategories
}

// IsCategory reports whether category belongs to the set for the type.
func IsCategory(t TransactionType, category string) bool {
	return slices.Contains(CategoriesFor(t), category)
}
