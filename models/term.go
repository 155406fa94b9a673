package models

// Term is a taxonomy term row.
type Term struct {
	ID        uint   `gorm:"column:term_id;primaryKey" json:"term_id"`
	Name      string `gorm:"size:200;not null;index" json:"name"`
	Slug      string `gorm:"size:200;not null;index" json:"slug"`
	TermGroup int64  `gorm:"not null;default:0" json:"term_group"`
}

func (Term) TableName() string {
	return "terms"
}

// TermTaxonomy places a term into a taxonomy and carries its description and usage count.
type TermTaxonomy struct {
	ID          uint   `gorm:"column:term_taxonomy_id;primaryKey" json:"term_taxonomy_id"`
	TermID      uint   `gorm:"not null;uniqueIndex:idx_term_taxonomy" json:"term_id"`
	Taxonomy    string `gorm:"size:32;not null;uniqueIndex:idx_term_taxonomy;index" json:"taxonomy"`
	Description string `gorm:"type:text" json:"description"`
	Parent      uint   `gorm:"not null;default:0" json:"parent"`
	Count       int64  `gorm:"not null;default:0" json:"count"`
	Term        Term   `gorm:"foreignKey:TermID;references:ID" json:"-"`
}

func (TermTaxonomy) TableName() string {
	return "term_taxonomy"
}

// TermRelationship binds an object (post) to a term taxonomy entry.
type TermRelationship struct {
	ObjectID       uint `gorm:"primaryKey;autoIncrement:false" json:"object_id"`
	TermTaxonomyID uint `gorm:"primaryKey;autoIncrement:false;index" json:"term_taxonomy_id"`
	TermOrder      int  `gorm:"not null;default:0" json:"term_order"`
}

func (TermRelationship) TableName() string {
	return "term_relationships"
}
