package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/gen/ent"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

var testDBSeq atomic.Int64

// openTestClient gives each test its own named in-memory database so
// state never leaks between tests in the same process.
func openTestClient(t *testing.T) *ent.Client {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared&_pragma=foreign_keys(1)",
		testDBSeq.Add(1))
	client, err := OpenSQLite(dsn, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, Migrate(context.Background(), client, logger))
	return client
}

func systemScope() entity.OwnerScope {
	return entity.OwnerScope{Type: constants.ScopeSystem, ScopeID: uuid.Nil}
}

func TestGetOrCreateConcurrentSameSymbol(t *testing.T) {
	client := openTestClient(t)
	repo := NewCompanyRepository(client, slog.New(slog.DiscardHandler))

	const workers = 8
	ids := make([]uuid.UUID, workers)
	var g errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			c, err := repo.GetOrCreate(context.Background(), &entity.CompanyInput{
				Symbol: "acme",
				Name:   "Acme Corp",
				Scope:  systemScope(),
			})
			if err != nil {
				return err
			}
			ids[i] = c.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for _, id := range ids[1:] {
		assert.Equal(t, ids[0], id)
	}
	n, err := client.Company.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n, "racing upserts must converge on one row")
}

func TestGetOrCreateOverwritesMutableFields(t *testing.T) {
	client := openTestClient(t)
	repo := NewCompanyRepository(client, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, &entity.CompanyInput{
		Symbol: " acme ",
		Scope:  systemScope(),
	})
	require.NoError(t, err)
	assert.Equal(t, "ACME", first.Symbol)
	assert.Equal(t, "ACME", first.Name, "name defaults to the symbol")

	sector := "Manufacturing"
	cap := 1.2e9
	second, err := repo.GetOrCreate(ctx, &entity.CompanyInput{
		Symbol:    "ACME",
		Name:      "Acme Corp",
		Sector:    &sector,
		MarketCap: &cap,
		Scope:     systemScope(),
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Acme Corp", second.Name)
	require.NotNil(t, second.Sector)
	assert.Equal(t, sector, *second.Sector)
	require.NotNil(t, second.MarketCap)
	assert.InDelta(t, cap, *second.MarketCap, 0.1)
}

func TestGetOrCreateScopesAreDistinct(t *testing.T) {
	client := openTestClient(t)
	repo := NewCompanyRepository(client, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	system, err := repo.GetOrCreate(ctx, &entity.CompanyInput{
		Symbol: "ACME",
		Scope:  systemScope(),
	})
	require.NoError(t, err)

	org, err := repo.GetOrCreate(ctx, &entity.CompanyInput{
		Symbol: "ACME",
		Scope: entity.OwnerScope{
			Type:    constants.ScopeOrganization,
			ScopeID: uuid.New(),
		},
	})
	require.NoError(t, err)

	assert.NotEqual(t, system.ID, org.ID, "same symbol under different scopes is two companies")
	n, err := client.Company.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
