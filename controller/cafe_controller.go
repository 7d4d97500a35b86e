package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"cafeapi/model"
	"cafeapi/store"
	"cafeapi/utils"

	"github.com/gin-gonic/gin"
)

// CafeService is the query/command layer the handlers delegate to.
type CafeService interface {
	All(ctx context.Context) ([]model.Cafe, error)
	Random(ctx context.Context) (*model.Cafe, error)
	SearchByLocation(ctx context.Context, loc string) ([]model.Cafe, error)
	Create(ctx context.Context, cafe *model.Cafe) error
	Update(ctx context.Context, id uint, upd model.CafeUpdate) (*model.Cafe, error)
}

// CafeController serves the cafe endpoints.
type CafeController struct {
	cafes CafeService
}

// NewCafeController builds the handlers on top of cafes.
func NewCafeController(cafes CafeService) *CafeController {
	return &CafeController{cafes: cafes}
}

type randomResponse struct {
	Cafe []model.Cafe `json:"cafe"`
}

type listResponse struct {
	Cafes []model.Cafe `json:"cafes"`
}

type cafeMessageResponse struct {
	Message string     `json:"message"`
	Cafe    model.Cafe `json:"cafe"`
}

func (ctl *CafeController) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (ctl *CafeController) Random(c *gin.Context) {
	cafe, err := ctl.cafes.Random(c.Request.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No cafes found."})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, randomResponse{Cafe: []model.Cafe{*cafe}})
}

func (ctl *CafeController) All(c *gin.Context) {
	cafes, err := ctl.cafes.All(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Cafes: cafes})
}

func (ctl *CafeController) Search(c *gin.Context) {
	loc := c.Query("loc")
	if strings.TrimSpace(loc) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action."})
		return
	}

	cafes, err := ctl.cafes.SearchByLocation(c.Request.Context(), loc)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No cafes found in %s.", loc)})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, listResponse{Cafes: cafes})
}

func (ctl *CafeController) Add(c *gin.Context) {
	var input model.CafeInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cafe data: " + err.Error()})
		return
	}

	cafe := input.ToCafe()
	if err := ctl.cafes.Create(c.Request.Context(), &cafe); err != nil {
		if errors.Is(err, store.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("A cafe named %s already exists.", cafe.Name)})
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cafeMessageResponse{Message: "Cafe added successfully!", Cafe: cafe})
}

// Update applies the fields given as query parameters to the cafe named by id.
func (ctl *CafeController) Update(c *gin.Context) {
	rawID := c.Query("id")
	if rawID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing café ID."})
		return
	}
	id, err := utils.ParseID(rawID)
	if err != nil {
		// A malformed id cannot name a record.
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found."})
		return
	}

	upd, err := updateFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cafe, err := ctl.cafes.Update(c.Request.Context(), id, upd)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found."})
		case errors.Is(err, store.ErrConflict) && upd.Name != nil:
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("A cafe named %s already exists.", *upd.Name)})
		default:
			internalError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, cafeMessageResponse{Message: "Cafe updated successfully!", Cafe: *cafe})
}

func updateFromQuery(c *gin.Context) (model.CafeUpdate, error) {
	var upd model.CafeUpdate

	required := []struct {
		key string
		dst **string
	}{
		{"name", &upd.Name},
		{"map_url", &upd.MapURL},
		{"img_url", &upd.ImgURL},
		{"location", &upd.Location},
		{"seats", &upd.Seats},
	}
	for _, f := range required {
		if v, ok := c.GetQuery(f.key); ok {
			if strings.TrimSpace(v) == "" {
				return upd, fmt.Errorf("Invalid value for %s: must not be empty.", f.key)
			}
			*f.dst = &v
		}
	}
	if v, ok := c.GetQuery("coffee_price"); ok {
		upd.CoffeePrice = &v
	}

	flags := []struct {
		key string
		dst **bool
	}{
		{"has_toilet", &upd.HasToilet},
		{"has_wifi", &upd.HasWifi},
		{"has_sockets", &upd.HasSockets},
		{"can_take_calls", &upd.CanTakeCalls},
	}
	for _, f := range flags {
		if v, ok := c.GetQuery(f.key); ok {
			b, err := utils.ParseStrictBool(v)
			if err != nil {
				return upd, fmt.Errorf("Invalid value for %s: must be true or false.", f.key)
			}
			*f.dst = &b
		}
	}

	return upd, nil
}

func internalError(c *gin.Context, err error) {
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
