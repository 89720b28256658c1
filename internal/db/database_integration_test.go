//go:build integration_tests
// +build integration_tests

package db

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoronova/servicedesk/internal/testutils"
	"github.com/avoronova/servicedesk/internal/types"
)

var DBDSN string

func TestMain(m *testing.M) {
	code, err := runMain(m)

	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func runMain(m *testing.M) (int, error) {

	databaseDSN, cleanUp, err := testutils.RunTestDatabase()
	defer cleanUp()

	if err != nil {
		return 1, err
	}
	DBDSN = databaseDSN

	exitCode := m.Run()

	return exitCode, nil

}

func TestCreateAndGetOrder(t *testing.T) {

	database, err := NewDatabase(DBDSN)
	require.NoError(t, err)

	order, err := database.CreateOrder(context.Background(), "A", "cleaning", "1 Main St")
	require.NoError(t, err)

	assert.Equal(t, "A", order.CustomerName)
	assert.Equal(t, "cleaning", order.ServiceType)
	assert.Equal(t, "1 Main St", order.Address)
	assert.Equal(t, types.StatusReceived, order.Status)
	assert.Equal(t, types.PaymentPending, order.PaymentStatus)

	second, err := database.CreateOrder(context.Background(), "B", "plumbing", "2 Main St")
	require.NoError(t, err)
	assert.Greater(t, second.ID, order.ID)

	got, err := database.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, order, got)
}

func TestGetOrderNotFound(t *testing.T) {

	database, err := NewDatabase(DBDSN)
	require.NoError(t, err)

	_, err = database.GetOrder(context.Background(), 99999)

	var notFound *OrderNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, 99999, notFound.OrderID)
}

func TestUpdateOrderStatus(t *testing.T) {

	database, err := NewDatabase(DBDSN)
	require.NoError(t, err)

	order, err := database.CreateOrder(context.Background(), "A", "cleaning", "1 Main St")
	require.NoError(t, err)

	err = database.UpdateOrderStatus(context.Background(), order.ID, "In Progress")
	require.NoError(t, err)

	got, err := database.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, types.Status("In Progress"), got.Status)
	assert.Equal(t, types.PaymentPending, got.PaymentStatus)

	err = database.UpdateOrderStatus(context.Background(), 99999, "In Progress")
	var notFound *OrderNotFoundError
	assert.True(t, errors.As(err, &notFound))
}

func TestMarkOrderPaid(t *testing.T) {

	database, err := NewDatabase(DBDSN)
	require.NoError(t, err)

	order, err := database.CreateOrder(context.Background(), "A", "cleaning", "1 Main St")
	require.NoError(t, err)

	err = database.MarkOrderPaid(context.Background(), order.ID, 5000, "ch_1")
	require.NoError(t, err)

	got, err := database.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, types.PaymentPaid, got.PaymentStatus)

	// one charge per order
	err = database.MarkOrderPaid(context.Background(), order.ID, 5000, "ch_2")
	var alreadyPaid *OrderAlreadyPaidError
	assert.True(t, errors.As(err, &alreadyPaid))
	assert.Equal(t, order.ID, alreadyPaid.OrderID)

	got, err = database.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, types.PaymentPaid, got.PaymentStatus)
}

func TestMarkOrderPaidNotFound(t *testing.T) {

	database, err := NewDatabase(DBDSN)
	require.NoError(t, err)

	err = database.MarkOrderPaid(context.Background(), 99999, 5000, "ch_1")

	var notFound *OrderNotFoundError
	assert.True(t, errors.As(err, &notFound))
}
