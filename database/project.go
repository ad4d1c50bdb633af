package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"dreamcatcher/generator"
)

type Project struct {
	Model
	Name      string `json:"name"`
	Language  string `json:"language"`
	Framework string `json:"framework,omitempty"`
	Status    string `json:"status" gorm:"default:'active'"`
	OwnerId   uint   `json:"-" gorm:"index"`
	Owner     User   `json:"-" gorm:"foreignKey:OwnerId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
}

type ProjectFile struct {
	Model
	Filename  string  `json:"filename"`
	Filepath  string  `json:"filepath"`
	Content   string  `json:"content"`
	FileType  string  `json:"file_type"`
	Size      int     `json:"size"`
	ProjectId uint    `json:"-" gorm:"index"`
	Project   Project `json:"-" gorm:"foreignKey:ProjectId;references:ID;constraint:OnUpdate:CASCADE,OnDelete:NO ACTION;"`
}

func fileTypeOf(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return filename[idx+1:]
}

// CreateProject scaffolds an initial file set through the gateway and persists
// project plus files in one transaction. A scaffold failure leaves no project
// behind.
func CreateProject(ctx context.Context, DB *gorm.DB, gateway *generator.Gateway, owner *User, name string, language string, framework string) (*Project, error) {
	scaffold, err := gateway.ScaffoldProject(ctx, name, language, framework)
	if err != nil {
		return nil, err
	}

	project := Project{
		Name:      name,
		Language:  language,
		Framework: framework,
		Status:    "active",
		OwnerId:   owner.ID,
	}

	err = DB.Transaction(func(tx *gorm.DB) error {
		if q := tx.Create(&project); q.Error != nil {
			return q.Error
		}

		for _, f := range scaffold.Files {
			file := ProjectFile{
				Filename:  f.Name,
				Filepath:  "/" + name + "/" + f.Name,
				Content:   f.Content,
				FileType:  fileTypeOf(f.Name),
				Size:      len(f.Content),
				ProjectId: project.ID,
			}
			if q := tx.Create(&file); q.Error != nil {
				return q.Error
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// ListProjects returns projects the user owns. Projects reachable only through
// a collaboration grant are fetched by id instead.
func ListProjects(DB *gorm.DB, owner *User) ([]Project, error) {
	var projects []Project
	if err := DB.Where("owner_id = ?", owner.ID).Order("created_at ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func GetProject(DB *gorm.DB, id uint) (*Project, error) {
	var project Project
	q := DB.First(&project, "id = ?", id)

	if q.Error != nil {
		if errors.Is(q.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, q.Error
	}

	return &project, nil
}

func GetProjectByUUID(DB *gorm.DB, uuid string) (*Project, error) {
	var project Project
	q := DB.First(&project, "uuid = ?", uuid)

	if q.Error != nil {
		if errors.Is(q.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, q.Error
	}

	return &project, nil
}

func ListProjectFiles(DB *gorm.DB, project *Project) ([]ProjectFile, error) {
	var files []ProjectFile
	if err := DB.Where("project_id = ?", project.ID).Order("created_at ASC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

// DeleteProject removes the project and everything hanging off it: files,
// collaborations, AI sessions and their interactions. All or nothing.
func DeleteProject(DB *gorm.DB, id uint) error {
	project, err := GetProject(DB, id)
	if err != nil {
		return err
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		var sessionIds []uint
		if err := tx.Model(&AISession{}).Where("project_id = ?", project.ID).Pluck("id", &sessionIds).Error; err != nil {
			return err
		}

		if len(sessionIds) > 0 {
			if err := tx.Where("session_id IN ?", sessionIds).Delete(&AIInteraction{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&AISession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&Collaboration{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&ProjectFile{}).Error; err != nil {
			return err
		}

		return tx.Delete(project).Error
	})
}
