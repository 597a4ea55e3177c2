package repositories

import (
	"github.com/aeiluminate/backend/internal/models"
	"gorm.io/gorm"
)

// ProgramRepository defines the interface for academic-program data operations
type ProgramRepository interface {
	ListPrograms() ([]models.AcademicProgram, error)
	GetProgramByID(id string) (*models.AcademicProgram, error)
}

// PostgresProgramRepository implements ProgramRepository for PostgreSQL
type PostgresProgramRepository struct {
	db *gorm.DB
}

// NewPostgresProgramRepository creates a new PostgresProgramRepository
func NewPostgresProgramRepository(db *gorm.DB) *PostgresProgramRepository {
	return &PostgresProgramRepository{db: db}
}

// ListPrograms retrieves all academic programs
func (r *PostgresProgramRepository) ListPrograms() ([]models.AcademicProgram, error) {
	var programs []models.AcademicProgram
	if err := r.db.Order("program_name").Find(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

// GetProgramByID retrieves an academic program by ID
func (r *PostgresProgramRepository) GetProgramByID(id string) (*models.AcademicProgram, error) {
	var program models.AcademicProgram
	if err := r.db.First(&program, "program_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &program, nil
}
