package handler

import (
	"context"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// SettingsStore reads and writes runtime-updatable settings such as the
// external lookup API keys. Updates take effect on the next request that
// reads the key, without a restart.
type SettingsStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// SystemHandler handles system-related API endpoints
type SystemHandler struct {
	BaseHandler
	settings  SettingsStore
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(settings SettingsStore) *SystemHandler {
	return &SystemHandler{
		settings:  settings,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers system routes on the given group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/info", h.GetSystemInfo)
		system.GET("/ping", h.Ping)
		system.GET("/settings/:key", h.GetSetting)
		system.PUT("/settings/:key", h.UpdateSetting)
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// GetSystemInfo returns basic system information including version and uptime
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      "SCM Backend API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}

// PingResponse represents the ping response
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Ping checks that the API is responsive
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// SettingResponse represents one runtime setting
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UpdateSettingRequest carries a new value for a setting key
type UpdateSettingRequest struct {
	Value string `json:"value" binding:"max=500"`
}

// GetSetting returns the stored value for a setting key
func (h *SystemHandler) GetSetting(c *gin.Context) {
	key := c.Param("key")
	value, err := h.settings.Get(c.Request.Context(), key)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, SettingResponse{Key: key, Value: value})
}

// UpdateSetting creates or replaces the value for a setting key
func (h *SystemHandler) UpdateSetting(c *gin.Context) {
	key := c.Param("key")
	var req UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if err := h.settings.Set(c.Request.Context(), key, req.Value); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, SettingResponse{Key: key, Value: req.Value})
}
