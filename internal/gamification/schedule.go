// internal/gamification/schedule.go
package gamification

import (
	"time"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// Paket gamification berisi seluruh kalkulasi inti aplikasi: penjadwalan due
// date, poin/level, streak, seleksi task, evaluasi achievement, dan agregasi
// risiko. Semua fungsi di paket ini murni (pure): tidak ada state tersembunyi,
// tidak ada I/O, waktu selalu diterima sebagai parameter eksplisit agar mudah
// diuji.

// DefaultMultiYearInterval dipakai bila template multi_year tidak menyebutkan
// FrequencyValue (atau nilainya tidak masuk akal).
const DefaultMultiYearInterval = 2

// StartOfDay memotong t ke tengah malam pada lokasi waktu t.
// Semua kalkulasi jadwal bekerja pada start-of-day supaya jam penyelesaian
// yang berbeda-beda tidak menggeser jadwal dari hari ke hari.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NextDueDate menghitung due date berikutnya untuk sebuah frequency, dihitung
// dari start-of-day `from`. multiplier hanya dipakai untuk multi_year; nilai
// <= 0 berarti pakai DefaultMultiYearInterval.
//
// Frequency yang tidak dikenal diperlakukan seperti daily. Ini kebijakan
// fallback yang disengaja, bukan validasi: validasi enum dilakukan di boundary
// HTTP, bukan di sini.
func NextDueDate(frequency models.TaskFrequency, from time.Time, multiplier int) time.Time {
	day := StartOfDay(from)

	switch frequency {
	case models.FrequencyDaily:
		return day.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return day.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return day.AddDate(0, 1, 0)
	case models.FrequencyQuarterly:
		return day.AddDate(0, 3, 0)
	case models.FrequencySemiAnnual:
		return day.AddDate(0, 6, 0)
	case models.FrequencyAnnual:
		return day.AddDate(1, 0, 0)
	case models.FrequencyMultiYear:
		years := multiplier
		if years <= 0 {
			years = DefaultMultiYearInterval
		}
		return day.AddDate(years, 0, 0)
	default:
		return day.AddDate(0, 0, 1)
	}
}

// DaysBetween menghitung selisih hari kalender antara start-of-day a dan b
// (positif bila a setelah b). Dipakai oleh streak dan status instance.
func DaysBetween(a, b time.Time) int {
	da := StartOfDay(a)
	db := StartOfDay(b)
	return int(da.Sub(db).Hours() / 24)
}

// DaysUntilDue mengembalikan berapa hari lagi (kalender) sampai nextDue,
// negatif bila sudah lewat.
func DaysUntilDue(nextDue, now time.Time) int {
	return DaysBetween(nextDue, now)
}
