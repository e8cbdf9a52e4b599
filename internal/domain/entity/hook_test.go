package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHookParams_MissingFields(t *testing.T) {
	t.Run("All present", func(t *testing.T) {
		p := HookParams{Product: "CRM", Audience: "founders", Tone: "bold", Platform: "LinkedIn"}
		assert.Empty(t, p.MissingFields())
	})

	t.Run("Blank counts as missing", func(t *testing.T) {
		p := HookParams{Product: "  ", Audience: "founders", Tone: "", Platform: "LinkedIn"}
		assert.Equal(t, []string{"product", "tone"}, p.MissingFields())
	})

	t.Run("Everything missing", func(t *testing.T) {
		assert.Equal(t, []string{"product", "audience", "tone", "platform"}, HookParams{}.MissingFields())
	})
}

func TestHookParams_Hashtags(t *testing.T) {
	p := HookParams{Product: "Smart Water Bottle", Audience: "athletes", Tone: "Playful", Platform: "Tik Tok"}

	assert.Equal(t, []string{"smartwaterbottle", "tiktok", "playful"}, p.Hashtags())
}

func TestGeneratedHook(t *testing.T) {
	h := &GeneratedHook{Product: "CRM", Audience: "founders", Tone: "bold", Platform: "X"}
	assert.False(t, h.IsContinuation())
	assert.Equal(t, HookParams{Product: "CRM", Audience: "founders", Tone: "bold", Platform: "X"}, h.Params())

	h.OriginalHookID = "hook-1"
	assert.True(t, h.IsContinuation())
}
