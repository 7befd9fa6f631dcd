package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-catalog-api/internal/models"
)

// ClientService manages machine clients for the client_credentials grant.
// Each client belongs to the user that registered it and issued tokens act
// on that user's behalf.
type ClientService interface {
	// CreateClient registers a machine client for the given user and
	// returns the stored record together with the plaintext secret. The
	// secret is only available at creation time, the database keeps a
	// bcrypt hash.
	CreateClient(userID uint, name, domain string) (*models.OAuthClient, string, error)
	GetClientsByUserID(userID uint) ([]models.OAuthClient, error)
	GetClientByID(id string) (*models.OAuthClient, error)
	DeleteClient(clientID string, userID uint) error
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(userID uint, name, domain string) (*models.OAuthClient, string, error) {
	secret, err := generateClientSecret()
	if err != nil {
		return nil, "", fmt.Errorf("generate client secret: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash client secret: %w", err)
	}

	client := models.OAuthClient{
		ID:     uuid.New().String(),
		Secret: string(hash),
		Name:   name,
		Domain: domain,
		UserID: userID,
		Scopes: "read write",
	}
	if err := s.db.Create(&client).Error; err != nil {
		return nil, "", err
	}
	return &client, secret, nil
}

func (s *clientService) GetClientsByUserID(userID uint) ([]models.OAuthClient, error) {
	var clients []models.OAuthClient
	if err := s.db.Where("user_id = ?", userID).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *clientService) GetClientByID(id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	if err := s.db.Where("id = ?", id).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return &client, nil
}

// DeleteClient removes a client only when it belongs to the calling user, so
// one account cannot revoke another account's credentials.
func (s *clientService) DeleteClient(clientID string, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", clientID, userID).Delete(&models.OAuthClient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}

func generateClientSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
