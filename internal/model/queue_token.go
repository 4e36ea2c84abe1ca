package model

import "time"

// TokenStatus 排隊令牌狀態
type TokenStatus string

const (
	TokenStatusWaiting TokenStatus = "WAITING"
	TokenStatusActive  TokenStatus = "ACTIVE"
	TokenStatusExpired TokenStatus = "EXPIRED"
)

// QueueToken 排隊令牌。Position 不儲存：WAITING 時由等待集合的排名即時計算，ACTIVE 時為 0
type QueueToken struct {
	UserID      int64       `json:"user_id"`
	Token       string      `json:"token"`
	Status      TokenStatus `json:"status"`
	Position    int64       `json:"position"`
	CreatedAt   time.Time   `json:"created_at"`
	ActivatedAt *time.Time  `json:"activated_at,omitempty"`
	ExpiresAt   *time.Time  `json:"expires_at,omitempty"`
}

// IssueTokenRequest 發放令牌請求
type IssueTokenRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

// IssueTokenResponse 發放令牌響應
type IssueTokenResponse struct {
	Token     string      `json:"token"`
	Status    TokenStatus `json:"status"`
	Position  int64       `json:"position"`
	CreatedAt time.Time   `json:"created_at"`
}

// QueueStatusResponse 令牌狀態響應
type QueueStatusResponse struct {
	Status               TokenStatus `json:"status"`
	Position             int64       `json:"position"`
	EstimatedWaitMinutes int64       `json:"estimated_wait_minutes"`
	ExpiresAt            *time.Time  `json:"expires_at,omitempty"`
}

// QueueStats 目前等待與活躍人數
type QueueStats struct {
	Waiting int64 `json:"waiting"`
	Active  int64 `json:"active"`
}
