package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brucekarangwamanzi/tuma-tr/internal/models"
	"github.com/brucekarangwamanzi/tuma-tr/internal/store"
)

func TestApply(t *testing.T) {
	st := store.New()
	require.NoError(t, Apply(st))

	john, err := st.UserByEmail(EmailCustomer)
	require.NoError(t, err)
	assert.True(t, john.IsVerified)
	assert.Equal(t, 4, john.TotalOrders)

	orders := st.ListOrders()
	require.Len(t, orders, 5)
	for _, o := range orders {
		require.NotEmpty(t, o.StatusHistory, "every seeded order carries history")
		last := o.StatusHistory[len(o.StatusHistory)-1]
		assert.Equal(t, o.Status, last.Status, "history tail matches status for %s", o.ProductName)
		for i := 1; i < len(o.StatusHistory); i++ {
			assert.False(t, o.StatusHistory[i].Timestamp.Before(o.StatusHistory[i-1].Timestamp))
		}
	}

	pending := st.PendingVerifications()
	assert.Len(t, pending, 2)

	processor, err := st.FirstUserByRole(models.RoleOrderProcessor)
	require.NoError(t, err)
	assert.Equal(t, EmailProcessor, processor.Email)

	content := st.SiteContent()
	assert.NotEmpty(t, content.About.Text)
	assert.Len(t, content.Companies, 3)
	assert.Equal(t, models.HeroModeVideo, content.HeroDisplayMode)
	assert.True(t, content.Announcement.Active)
}
