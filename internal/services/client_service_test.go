package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientGeneratesCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)

	owner := createTestUser(t, db, "mario", "mario@pizza.com")

	client, secret, err := svc.CreateClient(owner.ID, "POS Terminal", "http://localhost")
	require.NoError(t, err)

	_, err = uuid.Parse(client.ID)
	require.NoError(t, err)

	assert.NotEmpty(t, secret)
	assert.NotEqual(t, secret, client.Secret)
	assert.Equal(t, owner.ID, client.UserID)
	assert.Equal(t, "read write", client.Scopes)

	// The stored hash must verify against the plaintext handed out once
	assert.True(t, client.VerifyPassword(secret))
	assert.False(t, client.VerifyPassword("wrong-secret"))
}

func TestCreateClientSecretsAreUnique(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)

	owner := createTestUser(t, db, "mario", "mario@pizza.com")

	_, first, err := svc.CreateClient(owner.ID, "Terminal A", "http://localhost")
	require.NoError(t, err)
	_, second, err := svc.CreateClient(owner.ID, "Terminal B", "http://localhost")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestGetClientsByUserIDScopesToOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)

	mario := createTestUser(t, db, "mario", "mario@pizza.com")
	luigi := createTestUser(t, db, "luigi", "luigi@pizza.com")

	_, _, err := svc.CreateClient(mario.ID, "Terminal A", "http://localhost")
	require.NoError(t, err)
	_, _, err = svc.CreateClient(mario.ID, "Terminal B", "http://localhost")
	require.NoError(t, err)
	_, _, err = svc.CreateClient(luigi.ID, "Terminal C", "http://localhost")
	require.NoError(t, err)

	clients, err := svc.GetClientsByUserID(mario.ID)
	require.NoError(t, err)
	assert.Len(t, clients, 2)
	for _, client := range clients {
		assert.Equal(t, mario.ID, client.UserID)
	}
}

func TestGetClientByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)

	_, err := svc.GetClientByID("missing-client")
	require.ErrorIs(t, err, ErrClientNotFound)
	assert.True(t, IsNotFound(err))
}

func TestDeleteClientRequiresOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)

	mario := createTestUser(t, db, "mario", "mario@pizza.com")
	luigi := createTestUser(t, db, "luigi", "luigi@pizza.com")

	client, _, err := svc.CreateClient(mario.ID, "Terminal A", "http://localhost")
	require.NoError(t, err)

	// Another user cannot revoke the client
	err = svc.DeleteClient(client.ID, luigi.ID)
	require.ErrorIs(t, err, ErrClientNotFound)

	found, err := svc.GetClientByID(client.ID)
	require.NoError(t, err)
	assert.Equal(t, client.ID, found.ID)

	// The owner can
	require.NoError(t, svc.DeleteClient(client.ID, mario.ID))

	_, err = svc.GetClientByID(client.ID)
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestDeleteClientNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewClientService(db)

	owner := createTestUser(t, db, "mario", "mario@pizza.com")

	err := svc.DeleteClient("missing-client", owner.ID)
	require.ErrorIs(t, err, ErrClientNotFound)
}
