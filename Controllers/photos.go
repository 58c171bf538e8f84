package Controllers

import (
	"bytes"
	"log"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"

	"github.com/Hpoinseaux/Assmatapp/Models"
	"github.com/Hpoinseaux/Assmatapp/Storage"
	"github.com/Hpoinseaux/Assmatapp/middleware"
)

// PhotoController stores photos in one drive folder per child and serves
// them back to caregivers and parents.
type PhotoController struct {
	Drive    Storage.Drive
	Children []string
}

func NewPhotoController(drive Storage.Drive, children []string) *PhotoController {
	return &PhotoController{Drive: drive, Children: children}
}

var photoMimes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Upload accepts one photo for one child and stores the original plus a
// thumb_ variant used by list views.
func (pc *PhotoController) Upload(ctx *fiber.Ctx) error {
	child := ctx.FormValue("name")
	if !knownChild(pc.Children, child) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown child"})
	}

	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No photo provided"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	mime, ok := photoMimes[ext]
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid file type, expected jpg or png"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open uploaded file"})
	}
	defer src.Close()

	var original bytes.Buffer
	img, err := imaging.Decode(src)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unreadable image"})
	}

	folder, err := pc.Drive.GetOrCreateFolder(ctx.Context(), "photos/"+child)
	if err != nil {
		log.Println("photo folder:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to store photo"})
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid file type, expected jpg or png"})
	}
	if err := imaging.Encode(&original, img, format); err != nil {
		log.Println("encode photo:", err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process photo"})
	}
	id, err := pc.Drive.UploadFile(ctx.Context(), folder, fileHeader.Filename, original.Bytes(), mime)
	if err != nil {
		log.Println("upload photo:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to store photo"})
	}

	// Thumbnail for the gallery view.
	thumb := imaging.Resize(img, 320, 0, imaging.Lanczos)
	var thumbBuf bytes.Buffer
	if err := imaging.Encode(&thumbBuf, thumb, imaging.JPEG); err == nil {
		thumbName := "thumb_" + strings.TrimSuffix(fileHeader.Filename, ext) + ".jpg"
		if _, err := pc.Drive.UploadFile(ctx.Context(), folder, thumbName, thumbBuf.Bytes(), "image/jpeg"); err != nil {
			log.Println("upload thumbnail:", err)
		}
	}

	return ctx.JSON(fiber.Map{
		"message": "Photo ajoutée pour " + child,
		"id":      id,
	})
}

// List returns the photo files of one child. Parents are locked to their own
// child; caregivers pass ?name=.
func (pc *PhotoController) List(ctx *fiber.Ctx) error {
	child, ok := pc.resolveChild(ctx)
	if !ok {
		return nil
	}

	folder, err := pc.Drive.GetOrCreateFolder(ctx.Context(), "photos/"+child)
	if err != nil {
		log.Println("photo folder:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to list photos"})
	}
	files, err := pc.Drive.ListFiles(ctx.Context(), folder)
	if err != nil {
		log.Println("list photos:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to list photos"})
	}

	return ctx.JSON(fiber.Map{"child": child, "photos": files})
}

// Download streams one photo. The id must point inside the caller's allowed
// photo folder.
func (pc *PhotoController) Download(ctx *fiber.Ctx) error {
	child, ok := pc.resolveChild(ctx)
	if !ok {
		return nil
	}

	id := ctx.Query("id")
	if !strings.HasPrefix(id, "photos/"+child+"/") {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Photo not accessible"})
	}

	data, err := pc.Drive.DownloadFile(ctx.Context(), id)
	if err != nil {
		log.Println("download photo:", err)
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Failed to download photo"})
	}

	if mime, ok := photoMimes[strings.ToLower(filepath.Ext(id))]; ok {
		ctx.Set(fiber.HeaderContentType, mime)
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filepath.Base(id)+`"`)
	return ctx.Send(data)
}

// resolveChild picks the child for the request: parents always get their own,
// caregivers choose with ?name=. Returns false after writing the error
// response when the child name is unknown.
func (pc *PhotoController) resolveChild(ctx *fiber.Ctx) (string, bool) {
	user := middleware.CurrentUser(ctx)
	if user.Role == Models.RoleParent {
		return user.ChildName, true
	}
	child := ctx.Query("name")
	if !knownChild(pc.Children, child) {
		ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown child"})
		return "", false
	}
	return child, true
}
