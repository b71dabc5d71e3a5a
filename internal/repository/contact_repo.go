package repository

import (
	"github.com/abidnoul/portfolio/internal/model"

	"gorm.io/gorm"
)

type ContactRepository interface {
	Create(contact *model.Contact) error
	FindAll() ([]model.Contact, error)
	FindByID(id uint) (*model.Contact, error)
	SetResponded(id uint, responded bool) error
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new submission.
func (r *contactRepository) Create(contact *model.Contact) error {
	return r.db.Create(contact).Error
}

// FindAll returns all submissions, newest first.
func (r *contactRepository) FindAll() ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.Order("created_at DESC").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindByID returns one submission by primary key.
func (r *contactRepository) FindByID(id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// SetResponded flips the responded flag. This is the only mutation a contact
// row supports after creation.
func (r *contactRepository) SetResponded(id uint, responded bool) error {
	result := r.db.Model(&model.Contact{}).Where("id = ?", id).Update("responded", responded)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
