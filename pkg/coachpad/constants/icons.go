package constants

// Icon glyphs for use with icon fonts (Material Design Icons).
// These Unicode code points render as icons when used with the theme's icon font.
const (
	IconHome          = "\U000F02DC" // Dashboard/home
	IconSchool        = "\U000F0474" // Classroom
	IconClipboard     = "\U000F014E" // Attendance sheet
	IconBookOpen      = "\U000F00BE" // Assignments
	IconCalendar      = "\U000F00ED" // Schedule
	IconMessage       = "\U000F0361" // Messages
	IconChart         = "\U000F0127" // Progress/reports
	IconAccountGroup  = "\U000F0849" // User management
	IconBell          = "\U000F009A" // Notifications
	IconAccount       = "\U000F0004" // Profile
	IconCog           = "\U000F0493" // Settings
	IconLogout        = "\U000F0343" // Sign out
	IconPalette       = "\U000F03D8" // Design gallery
	IconAlert         = "\U000F0026" // Warnings, not-found
	IconCheckDecagram = "\U000F0791" // Verified account badge
)
