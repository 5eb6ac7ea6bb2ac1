package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentClamps(t *testing.T) {
	require.Equal(t, "72%", Percent(72))
	require.Equal(t, "0%", Percent(-3))
	require.Equal(t, "100%", Percent(250))
}

func TestMailtoEncodes(t *testing.T) {
	require.Equal(t, "mailto:me@example.com", Mailto("me@example.com"))
	require.Equal(t, "", Mailto("  "))
	require.NotContains(t, Mailto("a b@example.com"), " ")
}

func TestWhatsAppStripsFormatting(t *testing.T) {
	require.Equal(t, "https://wa.me/6281234567890", WhatsApp("+62 812-3456-7890"))
	require.Equal(t, "", WhatsApp("call me"))
}

func TestPlaceholderImage(t *testing.T) {
	require.Equal(t, "https://placehold.co/600x400", PlaceholderImage(0, 0, ""))
	got := PlaceholderImage(800, 500, "My Project")
	require.Equal(t, "https://placehold.co/800x500?text=My+Project", got)
}
