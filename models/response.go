package models

type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastWarning ToastType = "warning"
	ToastInfo    ToastType = "info"
)

// Toast is the one user-facing message every mutating operation produces.
// The client shows it in a transient auto-dismissing banner.
type Toast struct {
	Type    ToastType `json:"type"`
	Message string    `json:"message"`
}

func NewToast(t ToastType, message string) *Toast {
	return &Toast{Type: t, Message: message}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Toast   *Toast      `json:"toast,omitempty"`
}
