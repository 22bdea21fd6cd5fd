package voice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thucthuc0607-code/SmartFin-2/internal/models"
)

// Guess is a transaction draft derived from a transcript. It is never
// booked automatically.
type Guess struct {
	Amount     decimal.Decimal        `json:"amount" example:"35000"`
	Category   string                 `json:"category" example:"Ăn uống"`
	Note       string                 `json:"note" example:"Bún bò"`
	Type       models.TransactionType `json:"type" example:"expense"`
	WalletType models.WalletType      `json:"walletType" example:"cash"`
}

// Fallback is the guess used when a transcript cannot be classified.
func Fallback(text string) Guess {
	return Guess{
		Amount:     decimal.Zero,
		Category:   models.OtherCategory,
		Note:       text,
		Type:       models.TypeExpense,
		WalletType: models.WalletCash,
	}
}

// Parse decodes a classifier response and clamps every field to a valid
// value. Markdown code fences around the JSON are ignored.
func Parse(raw, text string) (Guess, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.TrimSpace(strings.ReplaceAll(cleaned, "```", ""))

	decoder := json.NewDecoder(bytes.NewBufferString(cleaned))
	decoder.UseNumber()

	var data map[string]any
	err := decoder.Decode(&data)
	if err != nil {
		return Guess{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	g := Fallback(text)

	if n, ok := data["amount"].(json.Number); ok {
		amount, err := decimal.NewFromString(n.String())
		if err == nil && amount.IsPositive() {
			g.Amount = amount
		}
	}

	if data["type"] == string(models.TypeIncome) {
		g.Type = models.TypeIncome
	}

	if category, ok := data["category"].(string); ok && models.IsCategory(g.Type, category) {
		g.Category = category
	}

	if wallet, ok := data["walletType"].(string); ok && models.WalletType(wallet).Valid() {
		g.WalletType = models.WalletType(wallet)
	}

	if note, ok := data["note"].(string); ok {
		g.Note = note
	}

	return g, nil
}

// Prompt returns the classification instructions for a transcript.
func Prompt(text string) string {
	return fmt.Sprintf(`Analyze text: %q
Extract JSON object with these fields:
1. "amount": number (convert k/m/tr/lít/củ to zeros. Example: "35k" -> 35000).
2. "type": string ("income" if keywords: lương, thưởng, bán, lãi, biếu, tặng, thu...; else "expense").
3. "category": string (Best match from list:
   - If expense: %s.
   - If income: %s).
4. "walletType": string (detect source: "bank" (ngân hàng, ck, chuyển khoản, mb, vcb...), "ewallet" (momo, ví, zalopay, apple pay), default "cash" (tiền mặt)).
5. "note": string (Remove amount, currency, wallet keywords, and category name from text. Keep only the specific description. Capitalize first letter. Example: "Bún bò 40k ngân hàng" -> "Bún bò"; "Lương tháng 2 10 triệu" -> "Tháng 2").

Return ONLY raw JSON. No markdown block.`,
		text,
		strings.Join(models.ExpenseCategories, ", "),
		strings.Join(models.IncomeCategories, ", "),
	)
}
