package website

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/smartchessacademy/website/src/assets"
	"github.com/smartchessacademy/website/src/config"
	"github.com/smartchessacademy/website/src/oops"
	"github.com/smartchessacademy/website/src/scadata"
	"github.com/smartchessacademy/website/src/siteurl"
	"github.com/smartchessacademy/website/src/templates"
)

const maxAvatarSize = 5 * 1024 * 1024
const profileGamesCount = 10

type profilePageData struct {
	templates.BaseData
	SubmitUrl      string
	AvatarUrl      string
	AvatarsEnabled bool
	FullNameValue  string

	Stats   templates.LichessSection[[]templates.PerfView]
	Games   templates.LichessSection[[]templates.GameView]
	Studies templates.LichessSection[[]templates.StudyView]
}

func Profile(c *RequestContext) ResponseData {
	data := profilePageData{
		BaseData:       getBaseData(c, "Your profile"),
		SubmitUrl:      siteurl.BuildProfile(),
		AvatarUrl:      siteurl.BuildProfileAvatar(),
		AvatarsEnabled: config.Config.AvatarsEnabled(),
	}
	if c.CurrentProfile != nil {
		data.FullNameValue = c.CurrentProfile.FullName

		// Each widget fails on its own; a lichess outage never takes
		// down the profile page.
		if lichessUsername := c.CurrentProfile.LichessUsername; lichessUsername != "" {
			user, err := c.Lichess.User(c, lichessUsername)
			data.Stats = lichessSection(templates.PerfsToTemplate(user), err)

			games, err := c.Lichess.UserGames(c, lichessUsername, profileGamesCount)
			data.Games = lichessSection(templates.GamesToTemplate(games), err)

			studies, err := c.Lichess.UserStudies(c, lichessUsername)
			data.Studies = lichessSection(templates.StudiesToTemplate(studies), err)
		}
	}

	var res ResponseData
	res.MustWriteTemplate("profile.html", data)
	return res
}

func ProfileSubmit(c *RequestContext) ResponseData {
	form, err := c.GetFormValues()
	if err != nil {
		return c.ErrorResponse(http.StatusBadRequest, NewSafeError(err, "the submitted form could not be parsed"))
	}

	update := scadata.ProfileUpdate{
		Username:        strings.TrimSpace(form.Get("username")),
		FullName:        strings.TrimSpace(form.Get("full_name")),
		LichessUsername: strings.TrimSpace(form.Get("lichess_username")),
	}
	if update.Username == "" && c.CurrentProfile != nil {
		update.Username = c.CurrentProfile.Username
	}

	err = scadata.UpdateProfile(c, c.Conn, c.CurrentUser.ID, update)
	if err != nil {
		if errors.Is(err, scadata.ErrUsernameTaken) {
			res := c.Redirect(siteurl.BuildProfile(), http.StatusSeeOther)
			res.AddFutureNotice("failure", "That username is already taken.")
			return res
		}
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to update profile"))
	}

	res := c.Redirect(siteurl.BuildProfile(), http.StatusSeeOther)
	res.AddFutureNotice("success", "Profile updated.")
	return res
}

func ProfileAvatarSubmit(c *RequestContext) ResponseData {
	if !config.Config.AvatarsEnabled() {
		return FourOhFour(c)
	}

	file, header, err := c.Req.FormFile("avatar")
	if err != nil {
		res := c.Redirect(siteurl.BuildProfile(), http.StatusSeeOther)
		res.AddFutureNotice("failure", "Please choose an image to upload.")
		return res
	}
	defer file.Close()

	if header.Size > maxAvatarSize {
		res := c.Redirect(siteurl.BuildProfile(), http.StatusSeeOther)
		res.AddFutureNotice("failure", "Avatars can be at most 5MB.")
		return res
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to read avatar upload"))
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		res := c.Redirect(siteurl.BuildProfile(), http.StatusSeeOther)
		res.AddFutureNotice("failure", "Avatars must be image files.")
		return res
	}

	asset, err := assets.Create(c, c.Conn, assets.CreateInput{
		Content:     content,
		Filename:    header.Filename,
		ContentType: contentType,
		UploaderID:  &c.CurrentUser.ID,
	})
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to store avatar"))
	}

	err = scadata.UpdateProfileAvatar(c, c.Conn, c.CurrentUser.ID, siteurl.BuildS3Asset(asset.S3Key))
	if err != nil {
		return c.ErrorResponse(http.StatusInternalServerError, oops.New(err, "failed to save avatar url"))
	}

	res := c.Redirect(siteurl.BuildProfile(), http.StatusSeeOther)
	res.AddFutureNotice("success", "Avatar updated.")
	return res
}

// lichessSection wraps a widget's data with a user-facing error string
// when the lichess API call failed.
func lichessSection[T any](data T, err error) templates.LichessSection[T] {
	if err != nil {
		return templates.LichessSection[T]{Err: "Couldn't reach lichess right now. Try again in a bit."}
	}
	return templates.LichessSection[T]{Data: data}
}
