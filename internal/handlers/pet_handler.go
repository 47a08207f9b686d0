package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/vet-clinic/internal/httperr"
	"github.com/BruksfildServices01/vet-clinic/internal/httpresp"
	"github.com/BruksfildServices01/vet-clinic/internal/middleware"
	"github.com/BruksfildServices01/vet-clinic/internal/photos"
	ucPet "github.com/BruksfildServices01/vet-clinic/internal/usecase/pet"
)

type PetHandler struct {
	create *ucPet.CreatePet
	list   *ucPet.ListPets
	remove *ucPet.DeletePet
	photo  *ucPet.UploadPetPhoto
	log    *logrus.Logger
}

func NewPetHandler(
	create *ucPet.CreatePet,
	list *ucPet.ListPets,
	remove *ucPet.DeletePet,
	photo *ucPet.UploadPetPhoto,
	log *logrus.Logger,
) *PetHandler {
	return &PetHandler{
		create: create,
		list:   list,
		remove: remove,
		photo:  photo,
		log:    log,
	}
}

type CreatePetRequest struct {
	Name    string      `json:"name"`
	Species string      `json:"species"`
	Breed   *string     `json:"breed"`
	Age     optionalInt `json:"age"`
}

func (h *PetHandler) List(c *gin.Context) {
	pets, err := h.list.Execute(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	httpresp.List(c, pets)
}

func (h *PetHandler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	pet, err := h.create.Execute(c.Request.Context(), ucPet.CreatePetInput{
		OwnerID: middleware.UserID(c),
		Name:    req.Name,
		Species: req.Species,
		Breed:   req.Breed,
		Age:     req.Age.Ptr(),
	})
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	httpresp.Created(c, pet)
}

func (h *PetHandler) Delete(c *gin.Context) {
	petID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), middleware.UserID(c), petID); err != nil {
		renderError(c, h.log, err)
		return
	}
	httpresp.Message(c, "Pet deleted successfully")
}

func (h *PetHandler) UploadPhoto(c *gin.Context) {
	petID, ok := parseID(c, "id")
	if !ok {
		return
	}

	// leave room for the multipart envelope
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, photos.MaxUploadBytes+(1<<20))

	header, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "invalid_photo", "A \"photo\" file is required.")
		return
	}

	file, err := header.Open()
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	defer file.Close()

	pet, err := h.photo.Execute(c.Request.Context(), middleware.UserID(c), petID, file)
	if err != nil {
		renderError(c, h.log, err)
		return
	}
	httpresp.OK(c, pet)
}
