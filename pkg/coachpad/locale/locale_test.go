package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTBeforeInitReturnsID(t *testing.T) {
	localizer = nil
	assert.Equal(t, "WelcomeTitle", T("WelcomeTitle"))
}

func TestEnglishStrings(t *testing.T) {
	require.NoError(t, Init("en"))

	assert.Equal(t, "Welcome to CoachPad", T("WelcomeTitle"))
	assert.Equal(t, "Sign out of CoachPad?", T("LogoutConfirm"))
	assert.Equal(t, "Hello, Maria", TData("DashboardGreeting", map[string]any{"Name": "Maria"}))
}

func TestSpanishStrings(t *testing.T) {
	require.NoError(t, Init("es"))

	assert.Equal(t, "Bienvenido a CoachPad", T("WelcomeTitle"))
	assert.Equal(t, "Cancelar", T("LogoutCancel"))
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	require.NoError(t, Init("fr"))

	assert.Equal(t, "Welcome to CoachPad", T("WelcomeTitle"))
}

func TestUnknownIDReturnsID(t *testing.T) {
	require.NoError(t, Init("en"))

	assert.Equal(t, "NoSuchMessage", T("NoSuchMessage"))
}
