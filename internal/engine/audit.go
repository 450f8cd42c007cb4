// internal/engine/audit.go
package engine

import (
	"fmt"
	"strings"
)

type FindingPriority string

const (
	PriorityHigh   FindingPriority = "high"
	PriorityMedium FindingPriority = "medium"
	PriorityLow    FindingPriority = "low"
)

type FindingStatus string

const (
	FindingPending   FindingStatus = "pending"
	FindingCompleted FindingStatus = "completed"
)

// Finding is one prioritized audit result. Status is the only field that
// changes after creation; everything else is frozen at audit time.
type Finding struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Action      string          `json:"action"`
	Priority    FindingPriority `json:"priority"`
	Status      FindingStatus   `json:"status"`
}

// ToggleStatus flips a finding between pending and completed. Toggling
// twice restores the original status; it never feeds back into the audit.
func (f *Finding) ToggleStatus() {
	if f.Status == FindingCompleted {
		f.Status = FindingPending
	} else {
		f.Status = FindingCompleted
	}
}

// Audit thresholds.
const (
	lowMarginThreshold = 20.0
	lowStockThreshold  = 10
	maxAuditFindings   = 5
	maxExampleProducts = 3
)

// RunAudit evaluates the full inventory against the threshold rules and
// appends the two constant review findings. The result is freshly built on
// every call, ordered by rule, and capped at maxAuditFindings entries.
func RunAudit(products []Product) []Finding {
	findings := make([]Finding, 0, maxAuditFindings)

	var lowMargin, lowStock, noImage []Product
	for _, p := range products {
		if p.Margin() < lowMarginThreshold {
			lowMargin = append(lowMargin, p)
		}
		if p.Stock < lowStockThreshold {
			lowStock = append(lowStock, p)
		}
		if p.ImageURL == "" {
			noImage = append(noImage, p)
		}
	}

	if len(lowMargin) > 0 {
		names := make([]string, 0, maxExampleProducts)
		for _, p := range lowMargin[:min(len(lowMargin), maxExampleProducts)] {
			names = append(names, p.Name)
		}
		action := "Produk: " + strings.Join(names, ", ")
		if len(lowMargin) > maxExampleProducts {
			action += "..."
		}
		findings = append(findings, Finding{
			ID:          1,
			Title:       "Review Harga Produk Margin Rendah",
			Description: fmt.Sprintf("%d produk memiliki margin di bawah 20%%. Pertimbangkan untuk menaikkan harga atau negosiasi ulang dengan supplier.", len(lowMargin)),
			Action:      action,
			Priority:    PriorityHigh,
			Status:      FindingPending,
		})
	}

	if len(lowStock) > 0 {
		examples := make([]string, 0, maxExampleProducts)
		for _, p := range lowStock[:min(len(lowStock), maxExampleProducts)] {
			examples = append(examples, fmt.Sprintf("%s (%d)", p.Name, p.Stock))
		}
		findings = append(findings, Finding{
			ID:          2,
			Title:       "Restok Produk Segera",
			Description: fmt.Sprintf("%d produk memiliki stok di bawah 10 unit. Segera lakukan restok untuk menghindari kehabisan stok.", len(lowStock)),
			Action:      "Produk: " + strings.Join(examples, ", "),
			Priority:    PriorityHigh,
			Status:      FindingPending,
		})
	}

	if len(noImage) > 0 {
		findings = append(findings, Finding{
			ID:          3,
			Title:       "Tambahkan Foto Produk",
			Description: fmt.Sprintf("%d produk belum memiliki foto. Produk dengan foto memiliki conversion rate 40%% lebih tinggi.", len(noImage)),
			Action:      "Upload foto berkualitas untuk setiap produk yang belum memiliki gambar",
			Priority:    PriorityMedium,
			Status:      FindingPending,
		})
	}

	findings = append(findings, Finding{
		ID:          4,
		Title:       "Audit Channel Marketing",
		Description: "Review performa setiap channel marketing. Fokuskan budget pada channel dengan ROAS tertinggi.",
		Action:      "Hentikan iklan di platform dengan performa buruk selama 7 hari, alihkan ke platform terbaik",
		Priority:    PriorityMedium,
		Status:      FindingPending,
	})

	findings = append(findings, Finding{
		ID:          5,
		Title:       "Kumpulkan Feedback Pelanggan",
		Description: "Hubungi 10 pelanggan terakhir untuk mendapatkan insight tentang hambatan pembelian.",
		Action:      "Kirim survey singkat via WhatsApp dengan insentif diskon 10% untuk pembelian berikutnya",
		Priority:    PriorityLow,
		Status:      FindingPending,
	})

	if len(findings) > maxAuditFindings {
		findings = findings[:maxAuditFindings]
	}
	return findings
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
