package services

import (
	"context"
	"fmt"
	"log"

	"github.com/rmatch-app/rmatch-backend/internal/dtos"
	"github.com/rmatch-app/rmatch-backend/internal/models"
	"gorm.io/gorm"
)

// MessagePublisher is the real-time fan-out hook; nil disables it.
type MessagePublisher interface {
	PublishMessage(ctx context.Context, msg models.Message) error
}

type MessageService struct {
	DB        *gorm.DB
	Publisher MessagePublisher
}

func NewMessageService(db *gorm.DB, publisher MessagePublisher) *MessageService {
	return &MessageService{DB: db, Publisher: publisher}
}

// Send stores the message and publishes it for real-time delivery. Publish
// failures are logged only; the message is already persisted.
func (s *MessageService) Send(ctx context.Context, session dtos.SessionUser, req dtos.SendMessageRequest) (*models.Message, error) {
	if req.ReceiverID == session.UserID {
		return nil, fmt.Errorf("%w: cannot message yourself", ErrValidation)
	}

	var receivers int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("id = ?", req.ReceiverID).Count(&receivers).Error; err != nil {
		return nil, err
	}
	if receivers == 0 {
		return nil, fmt.Errorf("%w: receiver does not exist", ErrValidation)
	}

	msg := models.Message{
		SenderID:   session.UserID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}
	if err := s.DB.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		if err := s.Publisher.PublishMessage(ctx, msg); err != nil {
			log.Println("Failed to publish message:", err)
		}
	}
	return &msg, nil
}

// Conversation pages through the two-party history in send order.
func (s *MessageService) Conversation(ctx context.Context, session dtos.SessionUser, otherUserID uint, page, pageSize int) ([]models.Message, int64, error) {
	base := func() *gorm.DB {
		return s.DB.WithContext(ctx).
			Model(&models.Message{}).
			Where(
				"(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
				session.UserID, otherUserID, otherUserID, session.UserID,
			)
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	err := base().
		Order("id ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&messages).Error
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}
