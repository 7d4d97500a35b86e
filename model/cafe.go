package model

// Cafe is one row of the cafe table.
type Cafe struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"size:250;not null;unique"`
	MapURL       string  `json:"map_url" gorm:"size:500;not null"`
	ImgURL       string  `json:"img_url" gorm:"size:500;not null"`
	Location     string  `json:"location" gorm:"size:250;not null"`
	Seats        string  `json:"seats" gorm:"size:250;not null"`
	HasToilet    bool    `json:"has_toilet" gorm:"not null"`
	HasWifi      bool    `json:"has_wifi" gorm:"not null"`
	HasSockets   bool    `json:"has_sockets" gorm:"not null"`
	CanTakeCalls bool    `json:"can_take_calls" gorm:"not null"`
	CoffeePrice  *string `json:"coffee_price" gorm:"size:250"`
}

// TableName keeps the singular table name so databases created by older
// deployments are picked up as is.
func (Cafe) TableName() string {
	return "cafe"
}

// CafeInput is the body accepted when adding a cafe. Booleans are pointers so
// a missing key fails validation instead of silently becoming false.
type CafeInput struct {
	Name         string  `json:"name" form:"name" binding:"required,max=250"`
	MapURL       string  `json:"map_url" form:"map_url" binding:"required,max=500"`
	ImgURL       string  `json:"img_url" form:"img_url" binding:"required,max=500"`
	Location     string  `json:"location" form:"location" binding:"required,max=250"`
	Seats        string  `json:"seats" form:"seats" binding:"required,max=250"`
	HasToilet    *bool   `json:"has_toilet" form:"has_toilet" binding:"required"`
	HasWifi      *bool   `json:"has_wifi" form:"has_wifi" binding:"required"`
	HasSockets   *bool   `json:"has_sockets" form:"has_sockets" binding:"required"`
	CanTakeCalls *bool   `json:"can_take_calls" form:"can_take_calls" binding:"required"`
	CoffeePrice  *string `json:"coffee_price" form:"coffee_price" binding:"omitempty,max=250"`
}

// ToCafe converts a validated input into a record ready for insertion.
func (in CafeInput) ToCafe() Cafe {
	return Cafe{
		Name:         in.Name,
		MapURL:       in.MapURL,
		ImgURL:       in.ImgURL,
		Location:     in.Location,
		Seats:        in.Seats,
		HasToilet:    deref(in.HasToilet),
		HasWifi:      deref(in.HasWifi),
		HasSockets:   deref(in.HasSockets),
		CanTakeCalls: deref(in.CanTakeCalls),
		CoffeePrice:  in.CoffeePrice,
	}
}

// CafeUpdate carries the fields of a partial update. Nil fields are left
// untouched.
type CafeUpdate struct {
	Name         *string
	MapURL       *string
	ImgURL       *string
	Location     *string
	Seats        *string
	HasToilet    *bool
	HasWifi      *bool
	HasSockets   *bool
	CanTakeCalls *bool
	CoffeePrice  *string
}

// Empty reports whether the update carries no field at all.
func (u CafeUpdate) Empty() bool {
	return u.Name == nil && u.MapURL == nil && u.ImgURL == nil &&
		u.Location == nil && u.Seats == nil &&
		u.HasToilet == nil && u.HasWifi == nil && u.HasSockets == nil &&
		u.CanTakeCalls == nil && u.CoffeePrice == nil
}

// Columns maps the set fields of u to their column names, ready for a
// partial UPDATE.
func (u CafeUpdate) Columns() map[string]any {
	cols := map[string]any{}
	for col, v := range map[string]*string{
		"name":     u.Name,
		"map_url":  u.MapURL,
		"img_url":  u.ImgURL,
		"location": u.Location,
		"seats":    u.Seats,
	} {
		if v != nil {
			cols[col] = *v
		}
	}
	for col, v := range map[string]*bool{
		"has_toilet":     u.HasToilet,
		"has_wifi":       u.HasWifi,
		"has_sockets":    u.HasSockets,
		"can_take_calls": u.CanTakeCalls,
	} {
		if v != nil {
			cols[col] = *v
		}
	}
	if u.CoffeePrice != nil {
		cols["coffee_price"] = *u.CoffeePrice
	}
	return cols
}

func deref(b *bool) bool {
	return b != nil && *b
}
