package theme

// Spacing tokens, in pixels. All chrome spacing derives from these; screens
// do not invent their own gaps.
const (
	SpacingXS int32 = 4
	SpacingSM int32 = 8
	SpacingMD int32 = 16
	SpacingLG int32 = 24
	SpacingXL int32 = 40
)

// Type scale, in points.
const (
	FontSizeSmall = 16
	FontSizeBody  = 20
	FontSizeTitle = 28
	FontSizeHero  = 40
)

// Chrome dimension tokens.
const (
	HeaderHeight      int32 = 56
	DrawerItemHeight  int32 = 48
	BottomSheetMaxPct int32 = 60 // bottom sheet covers at most this % of height
	CornerRadius      int32 = 8
)
