package command

import (
	"fmt"
	"strconv"
	"strings"
)

// The markdown templates below are part of the response contract: section
// headers, emoji markers, field order, and the Indonesian copy must stay
// byte-compatible with what the chat frontend renders.

// groupDigits renders an integer with comma thousand separators.
func groupDigits(n int) string {
	s := strconv.Itoa(n)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func renderMisi(view MissionsView) string {
	var b strings.Builder

	b.WriteString("# 🎯 MISI AKTIF HPZ CREW\n\n")

	b.WriteString("## 📅 Misi Mingguan\n\n")
	for i, mission := range view.Weekly {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, mission.Title)
		fmt.Fprintf(&b, "%s\n\n", mission.Description)
		fmt.Fprintf(&b, "- 🎁 **Reward:** %s\n", mission.Reward)
		fmt.Fprintf(&b, "- ⏰ **Deadline:** %s\n\n", mission.Deadline)
	}

	b.WriteString("## 📆 Misi Bulanan\n\n")
	for i, mission := range view.Monthly {
		fmt.Fprintf(&b, "### %d. %s\n", i+1, mission.Title)
		fmt.Fprintf(&b, "%s\n\n", mission.Description)
		fmt.Fprintf(&b, "- 🎁 **Reward:** %s\n", mission.Reward)
		fmt.Fprintf(&b, "- ⏰ **Deadline:** %s\n\n", mission.Deadline)
	}

	b.WriteString("---\n\n")
	b.WriteString("💡 **Tips:** Gunakan hashtag #RideWithPride untuk memperbesar peluang approval!\n\n")
	b.WriteString("📸 Upload konten berkualitas dan ikuti panduan yang sudah ditentukan ya! 🏍️✨")

	return b.String()
}

func renderPoinku(view PointsView) string {
	var b strings.Builder

	b.WriteString("# 💰 STATS POIN KAMU\n\n")
	fmt.Fprintf(&b, "- 💎 **Total Poin:** %s\n", groupDigits(view.Points))
	fmt.Fprintf(&b, "- 🏆 **Tier Saat Ini:** %s\n", view.Tier)
	fmt.Fprintf(&b, "- 📈 **Poin ke Tier Berikutnya:** %d poin lagi\n\n", view.PointsToNextTier)

	b.WriteString("## 🕐 Aktivitas Terakhir\n\n")
	for i, activity := range view.RecentActivities {
		fmt.Fprintf(&b, "%d. **+%d poin** - %s *(%s)*\n", i+1, activity.Points, activity.Description, activity.Date)
	}

	b.WriteString("\n## 💡 Cara Dapat Poin Tambahan\n\n")
	b.WriteString("- Upload konten #RideWithPride: **+50 poin**\n")
	b.WriteString("- Ajak teman: **+100 poin**\n")
	b.WriteString("- Ikut challenge: **+30 poin**\n")
	b.WriteString("- Generate sale: **+150 poin**\n\n")
	b.WriteString("---\n\n")
	b.WriteString("🔥 Terus tingkatkan kontribusimu untuk naik tier! 🚀")

	return b.String()
}

func renderTierku(view TierView) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s TIER KAMU: %s\n\n", view.Current.Color, view.Current.Name)
	fmt.Fprintf(&b, "- 💎 **Poin Saat Ini:** %s\n", groupDigits(view.CurrentPoints))
	if view.Next != nil {
		fmt.Fprintf(&b, "- 📊 **Progress ke %s:** %.1f%%\n", view.Next.Name, view.ProgressPercentage)
	} else {
		fmt.Fprintf(&b, "- 📊 **Progress:** %.1f%%\n", view.ProgressPercentage)
	}
	fmt.Fprintf(&b, "- 🎯 **Butuh:** %d poin lagi\n\n", view.PointsNeeded)

	fmt.Fprintf(&b, "## ✨ Benefit %s\n\n", view.Current.Name)
	for i, benefit := range view.Current.Benefits {
		fmt.Fprintf(&b, "%d. %s\n", i+1, benefit)
	}

	if view.Next != nil {
		fmt.Fprintf(&b, "\n## 🚀 Benefit %s (Coming Soon)\n\n", view.Next.Name)
		shown := view.Next.Benefits
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for i, benefit := range shown {
			fmt.Fprintf(&b, "%d. %s\n", i+1, benefit)
		}
		if len(view.Next.Benefits) > 3 {
			fmt.Fprintf(&b, "\n... dan **%d benefit lainnya!**\n\n", len(view.Next.Benefits)-3)
		}
	} else {
		b.WriteString("\n## 🎉 Kamu Sudah di Tier Tertinggi!\n\n")
		b.WriteString("Selamat! Kamu sudah mencapai tier maksimal HPZ Crew. Terus pertahankan kontribusimu! 🏆\n\n")
	}

	b.WriteString("## 💡 Tips Cepat Naik Tier\n\n")
	b.WriteString("- Fokus pada konten berkualitas tinggi\n")
	b.WriteString("- Ajak teman-teman kamu bergabung\n")
	b.WriteString("- Ikuti semua challenge mingguan\n")
	b.WriteString("- Ciptakan konten viral untuk bonus engagement!\n\n")
	b.WriteString("---\n\n")
	b.WriteString("🔥 Kamu sudah di jalan yang benar! Tetap konsisten! 🏍️✨")

	return b.String()
}

func renderFaq(entries []FAQ) string {
	var b strings.Builder

	b.WriteString("# ❓ FAQ (Pertanyaan Dasar)\n\n")

	for i, entry := range entries {
		fmt.Fprintf(&b, "%d\ufe0f\nQ: %s\n", i+1, entry.Question)
		if strings.Contains(entry.Answer, "\n") {
			fmt.Fprintf(&b, "A:\n%s\n", entry.Answer)
		} else {
			fmt.Fprintf(&b, "A: %s\n", entry.Answer)
		}
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderUpgrade(view UpgradeView) string {
	var b strings.Builder

	b.WriteString("# 🚀 UPGRADE TIER INFORMATION\n\n")
	fmt.Fprintf(&b, "- 📍 **Posisi Kamu:** %s\n", view.CurrentTier)
	fmt.Fprintf(&b, "- 🎯 **Target:** %s\n", view.NextTier)
	fmt.Fprintf(&b, "- 💎 **Poin Saat Ini:** %d\n", view.CurrentPoints)
	fmt.Fprintf(&b, "- 🎪 **Poin Dibutuhkan:** %d\n", view.NeededPoints)
	fmt.Fprintf(&b, "- 📈 **Kekurangan Poin:** %d poin\n\n", view.NeededPoints-view.CurrentPoints)

	fmt.Fprintf(&b, "## 📋 Requirements %s\n\n", view.NextTier)
	fmt.Fprintf(&b, "- 📸 %s\n", view.Requirements.Content)
	fmt.Fprintf(&b, "- 💰 %s\n", view.Requirements.Sales)
	fmt.Fprintf(&b, "- 📅 %s\n", view.Requirements.Membership)
	fmt.Fprintf(&b, "- 🤝 %s\n", view.Requirements.Mentoring)

	b.WriteString("\n## 💡 Strategi Upgrade Cepat\n\n")
	b.WriteString("1. **Konten Berkualitas:** Upload 3 konten approved lagi\n")
	b.WriteString("2. **Affiliate Sales:** Fokus pada 2 penjualan lagi\n")
	b.WriteString("3. **Mentoring:** Bantu 2 member baru (bonus poin +50)\n")
	b.WriteString("4. **Engagement:** Tingkatkan engagement rate diatas 3%\n\n")

	b.WriteString("## 🔥 Tips Tambahan\n\n")
	b.WriteString("- Gunakan hashtag #RideWithPride di semua konten\n")
	b.WriteString("- Share konten di jam prime time (19:00-21:00)\n")
	b.WriteString("- Kolaborasi dengan member lain untuk boost engagement\n")
	b.WriteString("- Ikuti semua challenge mingguan tanpa terkecuali!\n\n")
	b.WriteString("---\n\n")
	b.WriteString("💪 Kamu sudah sangat dekat! Tetap semangat! 🏍️✨")

	return b.String()
}

func renderHubungiAdmin(view AdminView) string {
	var b strings.Builder

	b.WriteString("# 📞 HUBUNGI ADMIN HPZ CREW\n\n")
	b.WriteString("🔥 **Butuh bantuan sekarang?** Kami siap membantu kamu!\n\n")

	b.WriteString("## 📧 Email Support\n\n")
	b.WriteString("- **Email:** crew@hpztv.com\n")
	b.WriteString("- **Respon:** 1x24 jam\n")
	b.WriteString("- **Subject:** [BANTUAN] - Isi masalah kamu\n\n")

	b.WriteString("## 💬 Discord Community\n\n")
	b.WriteString("- **Server:** discord.gg/hpzcrew\n")
	b.WriteString("- **Channel:** #support\n")
	b.WriteString("- **Respon:** Langsung (jika admin online)\n\n")

	b.WriteString("## 📱 Social Media\n\n")
	b.WriteString("- **Instagram:** @hpztv.official (DM)\n")
	b.WriteString("- **Respon:** 2-4 jam (jam kerja)\n\n")

	b.WriteString("## 🚨 Urgent Matters\n\n")
	b.WriteString("Jika terkait keamanan akun atau keamanan data:\n\n")
	fmt.Fprintf(&b, "- Sertakan user ID: `%s`\n", view.UserID)
	b.WriteString("- Email ke: emergency@hpztv.com\n\n")

	b.WriteString("## 📝 Info Yang Dibutuhkan\n\n")
	fmt.Fprintf(&b, "1. **User ID:** `%s`\n", view.UserID)
	fmt.Fprintf(&b, "2. **Email:** %s\n", view.UserEmail)
	b.WriteString("3. **Deskripsi masalah** (detail)\n")
	b.WriteString("4. **Screenshot** (jika ada error)\n\n")

	b.WriteString("## ⏰ Jam Operasional\n\n")
	b.WriteString("- **Senin - Jumat:** 09:00 - 18:00 WIB\n")
	b.WriteString("- **Sabtu:** 09:00 - 15:00 WIB\n")
	b.WriteString("- **Minggu & Libur:** Emergency only\n\n")

	b.WriteString("## 💡 Quick Response\n\n")
	b.WriteString("Untuk pertanyaan umum, coba gunakan perintah:\n\n")
	b.WriteString("- **/faq** - Pertanyaan yang sering diajukan\n")
	b.WriteString("- **/misi** - Info misi aktif\n")
	b.WriteString("- **/poinku** - Cek poin dan progress\n\n")
	b.WriteString("---\n\n")
	b.WriteString("🤝 Tim HPZ Crew selalu siap membantu perjalanan kamu di komunitas! 🏍️✨")

	return b.String()
}
