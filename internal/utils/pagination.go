// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"
)

// File ini berisi utilitas pagination untuk response API: parsing query
// parameter 'page'/'limit', metadata halaman, dan wrapper response generik.

// ====================================================================================
// Konstanta Pagination
// ====================================================================================

const (
	DefaultPage  = 1   // Halaman default bila query parameter 'page' tidak ada/invalid.
	DefaultLimit = 20  // Jumlah item default per halaman.
	MaxLimit     = 100 // Batas maksimum item per halaman.
)

// ====================================================================================
// Parsing Parameter Pagination
// ====================================================================================

// PaginationQuery menampung parameter pagination yang sudah divalidasi dari
// query string request, siap dipakai untuk slicing data.
type PaginationQuery struct {
	Page   int
	Limit  int
	Offset int // (Page - 1) * Limit
}

// ParsePaginationParams membaca dan memvalidasi 'page' dan 'limit' dari query
// string Fiber. Nilai hilang/invalid jatuh ke default; limit dibatasi MaxLimit.
func ParsePaginationParams(c *fiber.Ctx) PaginationQuery {
	pageStr := c.Query("page", strconv.Itoa(DefaultPage))
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		if pageStr != strconv.Itoa(DefaultPage) {
			zlog.Warn().Str("query_param", "page").Str("value", pageStr).
				Msg("Invalid 'page' query parameter, using default")
		}
		page = DefaultPage
	}

	limitStr := c.Query("limit", strconv.Itoa(DefaultLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		if limitStr != strconv.Itoa(DefaultLimit) {
			zlog.Warn().Str("query_param", "limit").Str("value", limitStr).
				Msg("Invalid 'limit' query parameter, using default")
		}
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		zlog.Warn().Int("requested_limit", limit).Int("max_limit", MaxLimit).
			Msg("Requested 'limit' exceeds maximum allowed, capping to max limit")
		limit = MaxLimit
	}

	return PaginationQuery{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// ====================================================================================
// Metadata Pagination
// ====================================================================================

// PaginationMeta adalah metadata halaman yang dikirim bersama data terpaginasi,
// dipakai frontend untuk membangun kontrol navigasi.
type PaginationMeta struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

// BuildPaginationMeta menghitung metadata dari total item, limit, dan halaman
// saat ini. CurrentPage dikoreksi agar tidak melebihi TotalPages.
func BuildPaginationMeta(totalItems, limit, page int) PaginationMeta {
	totalPages := 0
	if totalItems > 0 && limit > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	} else if totalItems > 0 {
		totalPages = 1
	}

	currentPage := page
	if totalPages > 0 && currentPage > totalPages {
		currentPage = totalPages
	} else if totalPages == 0 && currentPage > 1 {
		currentPage = 1
	}

	return PaginationMeta{
		CurrentPage: currentPage,
		PerPage:     limit,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
	}
}

// ====================================================================================
// Response API Terpaginasi
// ====================================================================================

// PaginatedResponse membungkus data terpaginasi beserta metadatanya dalam
// format response JSON standar aplikasi.
type PaginatedResponse[T any] struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []T            `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}

// NewPaginatedResponse membuat PaginatedResponse; data nil dinormalkan ke
// slice kosong agar JSON menghasilkan `[]`, bukan `null`.
func NewPaginatedResponse[T any](message string, data []T, meta PaginationMeta) PaginatedResponse[T] {
	if data == nil {
		data = make([]T, 0)
	}
	return PaginatedResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}
