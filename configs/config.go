// configs/config.go
package configs

import (
	"fmt" // Paket Go standar untuk formatting string (digunakan untuk pesan error).
	"os"  // Paket Go standar untuk interaksi OS, terutama membaca environment variables.

	"github.com/joho/godotenv" // Library pihak ketiga untuk memuat environment variables dari file .env.
	zlog "github.com/rs/zerolog/log"
)

// File ini bertanggung jawab untuk memuat konfigurasi aplikasi dari environment variables.
// Ini termasuk memuat variabel dari file .env (jika ada) dan memvalidasi
// keberadaan variabel lingkungan yang wajib ada.

// ====================================================================================
// Fungsi Pemuatan Konfigurasi
// ====================================================================================

// LoadConfig dipanggil di awal `main` untuk memuat konfigurasi:
// 1. Mencoba memuat variabel lingkungan dari file `.env` di direktori kerja.
//    Jika file tidak ditemukan, lanjut tanpa error (variabel mungkin sudah
//    diatur langsung di OS, Docker environment, dsb).
// 2. Memvalidasi keberadaan variabel lingkungan yang wajib (`requiredVars`).
//    Jika ada yang hilang, aplikasi dihentikan (Fatal) dengan pesan jelas.
func LoadConfig() {
	fmt.Fprintln(os.Stderr, "[INFO] Loading application configuration...")

	// --- Langkah 1: Coba Muat Variabel dari File .env ---
	// Variabel yang sudah ada di environment TIDAK akan ditimpa oleh nilai dari .env.
	err := godotenv.Load()
	if err != nil {
		// File .env tidak ditemukan: bukan kondisi fatal.
		// Gunakan fmt karena logger utama mungkin belum siap saat fungsi ini dipanggil.
		fmt.Fprintln(os.Stderr, "[WARN] No .env file found or error loading it. Reading environment variables directly.")
	} else {
		fmt.Fprintln(os.Stderr, "[INFO] Loaded environment variables from .env file (if found).")
	}

	// --- Langkah 2: Validasi Keberadaan Variabel Lingkungan Wajib ---
	// Aplikasi berjalan penuh in-memory, jadi hanya port HTTP yang wajib.
	requiredVars := []string{
		"APP_PORT",
	}

	fmt.Fprintf(os.Stderr, "[INFO] Validating %d required environment variables...\n", len(requiredVars))
	missingVars := []string{}

	for _, varName := range requiredVars {
		if os.Getenv(varName) == "" {
			missingVars = append(missingVars, varName)
			fmt.Fprintf(os.Stderr, "[ERROR] Required environment variable '%s' is not set.\n", varName)
		}
	}

	if len(missingVars) > 0 {
		zlog.Fatal().Strs("missing_variables", missingVars).Msg("Missing required environment variables. Application cannot start.")
	}

	zlog.Info().Msg("All required environment variables are set. Configuration loaded successfully.")
}
