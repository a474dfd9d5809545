package actions

// Icon selects the notification styling.
type Icon string

const (
	IconSuccess Icon = "success"
	IconError   Icon = "error"
)

// Notification is one user-visible message: a modal with a title, body text,
// an icon, and a confirm button.
type Notification struct {
	Title       string
	Text        string
	Icon        Icon
	ConfirmText string
}

// Notifier presents notifications to the user. The UI implements it with a
// modal overlay; tests implement it with a recorder.
type Notifier interface {
	Notify(n Notification)
}
