package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/internal/types"
	"github.com/greengivers/nursery/pkg/log"
)

// imageCacheControl marks stored image content as immutable: filenames are
// never reused, so a year-long cache is safe.
const imageCacheControl = "public, max-age=31536000, immutable"

// UploadImage stores one multipart image file (field "image", 5 MiB max).
func UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Message: "No image file provided",
		})

		return
	}

	info, err := imageService(c).Upload(c.Request.Context(), fh)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, types.MessageResponse{
		Success: true,
		Message: "Image uploaded successfully",
		Data:    info,
	})
}

// GetImage streams stored image bytes with long-lived cache headers. A read
// failure after the headers are written aborts the connection.
func GetImage(c *gin.Context) {
	rc, bf, err := imageService(c).Open(c.Request.Context(), c.Param("filename"))
	if err != nil {
		respondError(c, err)
		return
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			log.Logger().Warn().Err(cerr).Str("filename", bf.Filename).Msg("close image stream")
		}
	}()

	extraHeaders := map[string]string{
		"Cache-Control": imageCacheControl,
	}
	if bf.Hash != "" {
		extraHeaders["ETag"] = `"` + bf.Hash + `"`
	}

	c.DataFromReader(http.StatusOK, bf.Size, bf.ContentType, rc, extraHeaders)
}

// DeleteImage removes one stored image by filename.
func DeleteImage(c *gin.Context) {
	filename := c.Param("filename")
	if err := imageService(c).Delete(c.Request.Context(), filename); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{
		Success: true,
		Message: "Image deleted successfully",
	})
}

// ListImages returns metadata for every stored image.
func ListImages(c *gin.Context) {
	infos, err := imageService(c).List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListResponse{Success: true, Count: len(infos), Data: infos})
}
