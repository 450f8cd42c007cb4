// internal/engine/catalog.go
package engine

// PlatformRecommendation is one entry of a category's platform list.
type PlatformRecommendation struct {
	Name      string `json:"name"`
	Rationale string `json:"rationale"`
}

// TimelinePhase is one phase of the fixed action plan.
type TimelinePhase struct {
	Period string   `json:"period"`
	Phase  string   `json:"phase"`
	Tasks  []string `json:"tasks"`
}

// TacticAction is one action slot of a tactic group. When Local is set, it
// replaces Default for brands targeting the local market; every other
// target market gets Default.
type TacticAction struct {
	Default string
	Local   string
}

// TacticTemplate is the configuration shape of one tactic group.
type TacticTemplate struct {
	Category string
	Actions  []TacticAction
}

// Catalog holds the rule tables the strategy generators are pure over. It
// is built once at startup; the generators never mutate it.
type Catalog struct {
	Platforms map[string][]PlatformRecommendation
	Timeline  []TimelinePhase
	Tactics   []TacticTemplate
}

// DefaultCatalog returns the built-in rule tables for Indonesian small
// businesses. Platform lists carry exactly four entries per category; the
// DefaultCategory entry doubles as the fallback for unknown categories.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Platforms: map[string][]PlatformRecommendation{
			"Kuliner": {
				{Name: "TikTok", Rationale: "Konten makanan viral, jangkauan luas untuk Gen Z & Milenial"},
				{Name: "GoFood", Rationale: "Platform delivery makanan terbesar di Indonesia"},
				{Name: "GrabFood", Rationale: "Jangkauan luas dengan promo menarik"},
				{Name: "Instagram", Rationale: "Visual makanan yang menarik untuk brand awareness"},
			},
			"Fashion": {
				{Name: "Shopee", Rationale: "Marketplace fashion terbesar dengan fitur live streaming"},
				{Name: "Tokopedia", Rationale: "Traffic tinggi dengan program official store"},
				{Name: "Instagram", Rationale: "Platform visual ideal untuk fashion lookbook"},
				{Name: "TikTok Shop", Rationale: "Konten OOTD viral dan shopping langsung"},
			},
			"Kecantikan": {
				{Name: "Shopee", Rationale: "Kategori beauty terlaris dengan flash sale"},
				{Name: "TikTok", Rationale: "Tutorial makeup dan review produk viral"},
				{Name: "Instagram", Rationale: "Influencer beauty marketing yang efektif"},
				{Name: "Sociolla", Rationale: "Platform khusus beauty dengan komunitas loyal"},
			},
			"Elektronik": {
				{Name: "Tokopedia", Rationale: "Kategori elektronik terpercaya dengan garansi"},
				{Name: "Shopee", Rationale: "Flash sale elektronik dengan cicilan 0%"},
				{Name: "Blibli", Rationale: "Official store elektronik dengan after-sales terbaik"},
				{Name: "YouTube", Rationale: "Review dan unboxing untuk build trust"},
			},
			"Kerajinan": {
				{Name: "Etsy", Rationale: "Marketplace global untuk produk handmade"},
				{Name: "Instagram", Rationale: "Showcase proses kreatif dan behind the scenes"},
				{Name: "Tokopedia", Rationale: "Pasar lokal dengan kategori kerajinan"},
				{Name: "TikTok", Rationale: "Konten ASMR crafting dan proses pembuatan"},
			},
			"Jasa": {
				{Name: "Google Business", Rationale: "Visibilitas di pencarian lokal"},
				{Name: "Instagram", Rationale: "Portfolio dan testimoni visual"},
				{Name: "LinkedIn", Rationale: "Networking B2B dan professional branding"},
				{Name: "WhatsApp Business", Rationale: "Komunikasi langsung dengan katalog"},
			},
			"Kesehatan": {
				{Name: "Halodoc", Rationale: "Platform kesehatan terpercaya"},
				{Name: "Tokopedia", Rationale: "Kategori kesehatan dengan verifikasi"},
				{Name: "Instagram", Rationale: "Edukasi kesehatan dan wellness tips"},
				{Name: "TikTok", Rationale: "Konten health tips yang engaging"},
			},
			DefaultCategory: {
				{Name: "Shopee", Rationale: "Marketplace serba ada dengan traffic tinggi"},
				{Name: "Tokopedia", Rationale: "Platform e-commerce terpercaya"},
				{Name: "Instagram", Rationale: "Brand awareness dan engagement"},
				{Name: "TikTok", Rationale: "Jangkauan viral untuk semua kategori"},
			},
		},
		Timeline: []TimelinePhase{
			{
				Period: "Minggu 1-2",
				Phase:  "Setup",
				Tasks: []string{
					"Buat akun di platform yang direkomendasikan",
					"Siapkan foto produk profesional",
					"Tulis deskripsi produk yang menarik dengan SEO",
					"Setup katalog dan pricing strategy",
				},
			},
			{
				Period: "Minggu 3-4",
				Phase:  "Growth",
				Tasks: []string{
					"Mulai posting konten secara konsisten (3-5x/minggu)",
					"Jalankan promo launching (diskon 10-15%)",
					"Engage dengan komunitas dan calon pelanggan",
					"Kumpulkan review dari early adopters",
				},
			},
			{
				Period: "Minggu 5-8",
				Phase:  "Scaling",
				Tasks: []string{
					"Analisis performa dan optimasi strategi",
					"Tingkatkan budget iklan pada platform terbaik",
					"Kolaborasi dengan micro-influencer",
					"Expand ke platform sekunder",
				},
			},
		},
		Tactics: []TacticTemplate{
			{
				Category: "Content Strategy",
				Actions: []TacticAction{
					{Default: "Buat content calendar mingguan"},
					{Default: "Mix konten: 40% edukatif, 30% promosi, 30% entertainment"},
					{Default: "Gunakan trending audio dan hashtag"},
					{Default: "Post di prime time: 11-13 & 19-21"},
				},
			},
			{
				Category: "Pricing Strategy",
				Actions: []TacticAction{
					{Default: "Terapkan psychological pricing (Rp99.000 vs Rp100.000)"},
					{Default: "Bundle products untuk increase AOV"},
					{Default: "Flash sale mingguan untuk urgency"},
					{Default: "Loyalty program untuk repeat customers"},
				},
			},
			{
				Category: "Customer Acquisition",
				Actions: []TacticAction{
					{
						Default: "Expand jangkauan dengan ads nasional",
						Local:   "Fokus pada geo-targeting area sekitar",
					},
					{Default: "Referral program: diskon untuk yang invite teman"},
					{Default: "Kolaborasi dengan bisnis komplementer"},
					{Default: "Testimoni dan UGC sebagai social proof"},
				},
			},
		},
	}
}
