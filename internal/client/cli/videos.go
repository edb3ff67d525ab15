package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/benhsieh-dev/Youtube/internal/client/models"
)

func (a *App) Videos(ctx context.Context) error {
	videos, err := a.gateway.Videos.ListVideos(ctx)
	if err != nil {
		a.reportBackend(ctx, "list videos", err)
		return err
	}
	if len(videos) == 0 {
		a.println("No videos yet.")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tVIEWS\tSTATUS")
	for _, v := range videos {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", v.ID, v.Title, v.ViewCount, v.Status)
	}
	return tw.Flush()
}

func (a *App) Video(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: video <id>")
		return errUsage
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		a.println("Video id must be a positive number.")
		return errUsage
	}

	v, err := a.gateway.Videos.GetVideo(ctx, id)
	if err != nil {
		a.reportBackend(ctx, "get video", err)
		return err
	}
	a.printVideo(v)
	return nil
}

// Upload sends a local file to the video backend. Title defaults to the file
// name without extension.
func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.println("Usage: upload <path>")
		return errUsage
	}
	_, token, err := a.requireSession()
	if err != nil {
		return err
	}

	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		a.println("Cannot open " + path + ".")
		return err
	}
	defer f.Close()

	name := filepath.Base(path)
	title, err := a.prompt("Title (empty for " + strings.TrimSuffix(name, filepath.Ext(name)) + ")")
	if err != nil {
		return err
	}
	if title == "" {
		title = strings.TrimSuffix(name, filepath.Ext(name))
	}
	description, err := a.prompt("Description")
	if err != nil {
		return err
	}

	v, err := a.gateway.Videos.UploadVideo(ctx, models.VideoUpload{
		Title:       title,
		Description: description,
		FileName:    name,
		Content:     f,
	}, token)
	if err != nil {
		a.reportBackend(ctx, "upload video", err)
		return err
	}
	a.println(fmt.Sprintf("Uploaded video #%d (%s).", v.ID, v.Status))
	return nil
}

func (a *App) printVideo(v *models.Video) {
	fmt.Fprintf(a.out, "#%d %s\n", v.ID, v.Title)
	if v.Description != "" {
		fmt.Fprintln(a.out, v.Description)
	}
	fmt.Fprintf(a.out, "Status: %s  Views: %d  Likes: %d  Dislikes: %d\n",
		v.Status, v.ViewCount, v.LikeCount, v.DislikeCount)
	if v.DurationSeconds > 0 {
		fmt.Fprintf(a.out, "Duration: %d:%02d\n", v.DurationSeconds/60, v.DurationSeconds%60)
	}
}
