package command

// View structs mirror the rendered markdown as structured payloads. Their
// JSON field names are part of the response contract.

// MissionView is one mission as shown to the user.
type MissionView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Reward      string `json:"reward"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
}

// MissionsView groups missions by cadence.
type MissionsView struct {
	Weekly  []MissionView `json:"weekly"`
	Monthly []MissionView `json:"monthly"`
}

// ActivityView is one recent point-earning event.
type ActivityView struct {
	Description string `json:"description"`
	Points      int    `json:"points"`
	Date        string `json:"date"`
}

// PointsView is the /poinku payload.
type PointsView struct {
	Points           int            `json:"points"`
	Tier             string         `json:"tier"`
	PointsToNextTier int            `json:"pointsToNextTier"`
	RecentActivities []ActivityView `json:"recentActivities"`
}

// TierInfo describes one tier bracket in the /tierku payload.
type TierInfo struct {
	Name      string   `json:"name"`
	MinPoints int      `json:"minPoints"`
	MaxPoints *int     `json:"maxPoints,omitempty"`
	Color     string   `json:"color"`
	Benefits  []string `json:"benefits"`
}

// TierView is the /tierku payload. Next is null at the top tier.
type TierView struct {
	Current            TierInfo  `json:"current"`
	Next               *TierInfo `json:"next"`
	CurrentPoints      int       `json:"currentPoints"`
	PointsNeeded       int       `json:"pointsNeeded"`
	ProgressPercentage float64   `json:"progressPercentage"`
}

// RequirementsView carries the four /upgrade requirement checklist lines.
type RequirementsView struct {
	Content    string `json:"content"`
	Sales      string `json:"sales"`
	Membership string `json:"membership"`
	Mentoring  string `json:"mentoring"`
}

// UpgradeView is the /upgrade payload.
type UpgradeView struct {
	CurrentTier   string           `json:"currentTier"`
	NextTier      string           `json:"nextTier"`
	CurrentPoints int              `json:"currentPoints"`
	NeededPoints  int              `json:"neededPoints"`
	Requirements  RequirementsView `json:"requirements"`
}

// FAQ is one question/answer pair.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AdminView is the /hubungiadmin payload.
type AdminView struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// Fallback datasets. Each handler substitutes these wholesale when its live
// data fetch fails, never a partial merge.

func fallbackMissions() MissionsView {
	return MissionsView{
		Weekly: []MissionView{
			{
				ID:          1,
				Title:       "Motor Pride of The Week",
				Description: "Upload foto motor kamu dengan caption cerita di balik modifikasinya",
				Reward:      "+30 poin",
				Deadline:    "7 hari lagi",
				Status:      "active",
			},
			{
				ID:          2,
				Title:       "Weekend Riding Challenge",
				Description: "Share video riding experience kamu di akhir pekan",
				Reward:      "+40 poin",
				Deadline:    "3 hari lagi",
				Status:      "active",
			},
		},
		Monthly: []MissionView{
			{
				ID:          3,
				Title:       "HPZ Story Creator",
				Description: "Buat video pendek tentang pengalamanmu dengan produk HPZ",
				Reward:      "+100 poin",
				Deadline:    "15 hari lagi",
				Status:      "active",
			},
		},
	}
}

func fallbackPoints() PointsView {
	return PointsView{
		Points:           0,
		Tier:             "Rookie Rider",
		PointsToNextTier: 500,
		RecentActivities: []ActivityView{},
	}
}

func fallbackTier() TierView {
	rookieMax := 499
	return TierView{
		Current: TierInfo{
			Name:      "Rookie Rider",
			MinPoints: 0,
			MaxPoints: &rookieMax,
			Color:     "🏍️",
			Benefits: []string{
				"Access to Discord community",
				"Basic missions",
				"Monthly newsletter",
			},
		},
		Next: &TierInfo{
			Name:      "Pro Racer",
			MinPoints: 500,
			Color:     "🏍️",
			Benefits: []string{
				"Bonus points multiplier (1.2x)",
				"Feature on HPZ social media",
				"Exclusive merchandise access",
			},
		},
		CurrentPoints:      0,
		PointsNeeded:       500,
		ProgressPercentage: 0,
	}
}

func fallbackUpgrade() UpgradeView {
	return UpgradeView{
		CurrentTier:   "Rookie Rider",
		NextTier:      "Pro Racer",
		CurrentPoints: 0,
		NeededPoints:  500,
		Requirements: RequirementsView{
			Content:    "10 approved contents (current: 0)",
			Sales:      "3 successful affiliate sales (current: 0)",
			Membership: "90 days active membership (current: 0 days)",
			Mentoring:  "Mentor new members (current: 0)",
		},
	}
}

// faqs is the fixed ordered FAQ list shown by /faq.
var faqs = []FAQ{
	{
		Question: "Bagaimana cara bergabung?",
		Answer:   "Isi form “Join HPZ Crew” di halaman utama, lalu tunggu email konfirmasi dari tim HPZ. Setelah disetujui, kamu akan mendapat akses ke server Discord dan bisa langsung mulai misi pertamamu.",
	},
	{
		Question: "Apakah bergabung gratis?",
		Answer:   "Ya, 100% gratis untuk semua rider, kreator, maupun penggemar otomotif. Tidak ada biaya pendaftaran atau keanggotaan.",
	},
	{
		Question: "Bagaimana cara klaim reward?",
		Answer:   "Semua reward tercatat otomatis di dashboard kamu. Setelah diverifikasi oleh tim HPZ, hadiah akan dikirimkan ke alamat atau akun yang kamu daftarkan.",
	},
	{
		Question: "Apakah bisa ikut tanpa punya motor?",
		Answer:   "Bisa banget! 🚀 Selama kamu tertarik dengan dunia otomotif dan aktif membuat konten, kamu tetap bisa berpartisipasi penuh dalam HPZ Crew.",
	},
	{
		Question: "Bagaimana cara mendapatkan poin dan naik level?",
		Answer:   "- Upload konten dengan hashtag resmi #RideWithPride.\n- Ajak teman bergabung melalui link afiliasi.\n- Ikuti challenge mingguan dan event lokal.\nSetiap aktivitas memberi poin; setelah mencapai batas tertentu, sistem otomatis menaikkan level kamu ke Pro Racer atau HPZ Legend.",
	},
	{
		Question: "Apa saja keuntungan menjadi anggota HPZ Crew?",
		Answer:   "- Mendapat reward & merchandise eksklusif.\n- Akses ke event dan kopdar komunitas.\n- Kesempatan tampil di media HPZ TV.\n- Potensi penghasilan dari program afiliasi.\n- Kesempatan kolaborasi dengan micro influencer otomotif lainnya.",
	},
	{
		Question: "Bagaimana cara menggunakan link afiliasi saya?",
		Answer:   "Masuk ke dashboard → salin link afiliasi unik kamu → bagikan di media sosial atau grup komunitasmu.\nSetiap pembelian melalui link tersebut otomatis menambah poin dan komisi kamu.",
	},
	{
		Question: "Siapa yang bisa saya hubungi jika mengalami kendala?",
		Answer:   "- Chatbot perintah /hubungiadmin\n- Email: crew@hpztv.com\n- Channel Discord: #support\n- Instagram DM: @hpztv.official",
	},
}
