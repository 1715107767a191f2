package entities

import "time"

// Soil types accepted by the field form. SoilUnknown is the sentinel stored
// when the farmer left the soil survey blank.
const (
	SoilLoam      = "loam"
	SoilChernozem = "chernozem"
	SoilSandy     = "sandy"
	SoilClay      = "clay"
	SoilPeat      = "peat"
	SoilUnknown   = "unspecified"
)

type Field struct {
	FieldID       uint     `gorm:"primaryKey" json:"field_id"`
	Name          string   `json:"name" gorm:"not null"`
	AreaHa        float64  `json:"area_ha"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	PolygonCoords string   `json:"polygon_coords"` // JSON array of [lat,lng] pairs
	CenterLat     *float64 `json:"center_lat"`
	CenterLng     *float64 `json:"center_lng"`
	BoundingBox   string   `json:"bounding_box"` // JSON {min_lat,max_lat,min_lng,max_lng}
	SoilType      string   `json:"soil_type"`
	ClimateZone   string   `json:"climate_zone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
