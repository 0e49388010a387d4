package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserRole identifies the three fixed accounts of the system.
type UserRole string

const (
	RoleAdmin       UserRole = "ADMIN"
	RoleHadpanagala UserRole = "HADPANAGALA"
	RoleWalipitiya  UserRole = "WALIPITIYA"
)

// Primary nursery names. The two operator roles are permanently bound to
// these at provisioning time; the binding is not configurable at runtime.
const (
	NurseryHadpanagala = "Hadpanagal"
	NurseryWalipitiya  = "Walipitiya"
)

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Username  string `json:"username" validate:"required"`
	Password  string `json:"password" validate:"required"`
	IP        string `json:"-"`
	UserAgent string `json:"-"`
}

// LoginResponse returns the issued token and user info.
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresIn   int64     `json:"expires_in"`
	User        UserInfo  `json:"user"`
	IssuedAt    time.Time `json:"issued_at"`
}

// UserInfo describes the authenticated user in responses.
type UserInfo struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
}

// JWTClaims represents the JWT payload for access tokens.
type JWTClaims struct {
	UserID   string   `json:"user_id"`
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Session records an issued token so it can be revoked before expiry.
// Sessions live in Redis, keyed separately from the domain documents.
type Session struct {
	TokenID   string    `json:"token_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      UserRole  `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
}
