package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avolkovs/storekeeper/internal/client/models"
	"github.com/avolkovs/storekeeper/internal/client/services"
)

type fakeProducts struct {
	services.ProductService

	all       []models.Product
	deletedID int64
}

func (f *fakeProducts) All(_ context.Context) ([]models.Product, error) { return f.all, nil }
func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	f.deletedID = id
	return nil
}

type fakeCategories struct {
	all []models.Category
}

func (f *fakeCategories) All(_ context.Context) ([]models.Category, error) { return f.all, nil }

func loginAs(app *App, roles ...models.RoleName) {
	app.session.Login(context.Background(), "tok", testUser(roles...))
}

func TestAdminUsers_GuardedByRole(t *testing.T) {
	t.Run("anonymous is sent to login", func(t *testing.T) {
		app, out := newTestApp(t)
		require.NoError(t, app.AdminUsers(context.Background()))
		assert.Contains(t, out.String(), "Please log in first.")
	})

	t.Run("plain user is turned away", func(t *testing.T) {
		app, out := newTestApp(t)
		loginAs(app, models.RoleUser)
		require.NoError(t, app.AdminUsers(context.Background()))
		assert.Contains(t, out.String(), "requires the admin role")
	})
}

func TestAdminUsers_ListAndFilter(t *testing.T) {
	users := &fakeUsers{all: []models.User{
		*testUser(models.RoleUser, models.RoleAdmin),
		{ID: 8, Firstname: "John", Lastname: "Smith", Email: "john@example.com"},
	}}
	app, out := newTestApp(t, withUsers(users),
		withReader(readerFromLines("filter smith", "back")))
	loginAs(app, models.RoleUser, models.RoleAdmin)

	require.NoError(t, app.AdminUsers(context.Background()))

	s := out.String()
	assert.Contains(t, s, "jane@example.com")
	assert.Contains(t, s, "john@example.com")
	assert.Contains(t, s, `filter "smith"`)
	assert.Contains(t, s, "1 rows")
}

func TestAdminUsers_DeleteWithConfirmation(t *testing.T) {
	users := &fakeUsers{all: []models.User{
		*testUser(models.RoleUser, models.RoleAdmin),
		{ID: 8, Firstname: "John", Email: "john@example.com"},
	}}
	app, _ := newTestApp(t, withUsers(users),
		withReader(readerFromLines("del 8", "y", "back")))
	loginAs(app, models.RoleUser, models.RoleAdmin)

	require.NoError(t, app.AdminUsers(context.Background()))
	assert.Equal(t, int64(8), users.deletedID)
}

func TestAdminUsers_CannotDeleteSelf(t *testing.T) {
	users := &fakeUsers{all: []models.User{*testUser(models.RoleUser, models.RoleAdmin)}}
	app, out := newTestApp(t, withUsers(users),
		withReader(readerFromLines("del 7", "back")))
	loginAs(app, models.RoleUser, models.RoleAdmin)

	require.NoError(t, app.AdminUsers(context.Background()))
	assert.Zero(t, users.deletedID)
	assert.Contains(t, out.String(), "cannot delete your own account")
}

func TestAdminProducts_SortAndPaging(t *testing.T) {
	products := &fakeProducts{all: []models.Product{
		{ID: 1, Name: "Keyboard", Brand: "Acme", Price: 49.9, Inventory: 12},
		{ID: 2, Name: "Mouse", Brand: "Acme", Price: 19.9, Inventory: 40},
	}}
	app, out := newTestApp(t, withProducts(products),
		withReader(readerFromLines("sort price", "back")))
	loginAs(app, models.RoleUser, models.RoleAdmin)

	require.NoError(t, app.AdminProducts(context.Background()))

	s := out.String()
	assert.Contains(t, s, "sort price asc")
	assert.Contains(t, s, "2 rows")
}

func TestAdminProducts_DeclinedDeleteKeepsProduct(t *testing.T) {
	products := &fakeProducts{all: []models.Product{
		{ID: 1, Name: "Keyboard", Brand: "Acme"},
	}}
	app, out := newTestApp(t, withProducts(products),
		withReader(readerFromLines("del 1", "n", "back")))
	loginAs(app, models.RoleUser, models.RoleAdmin)

	require.NoError(t, app.AdminProducts(context.Background()))
	assert.Zero(t, products.deletedID)
	assert.Contains(t, out.String(), "Cancelled.")
}

func TestAdminProducts_ColumnVisibilityAndExportHelp(t *testing.T) {
	products := &fakeProducts{all: []models.Product{
		{ID: 1, Name: "Keyboard", Brand: "Acme"},
	}}
	app, out := newTestApp(t, withProducts(products), withCategories(&fakeCategories{}),
		withReader(readerFromLines("col brand", "cols", "back")))
	loginAs(app, models.RoleUser, models.RoleAdmin)

	require.NoError(t, app.AdminProducts(context.Background()))
	assert.Contains(t, out.String(), "[ ] Brand (brand)")
}
