package controller

import (
	"context"
	"fmt"

	"github.com/GAMOps/gamops/pkg/batch"
	"github.com/GAMOps/gamops/pkg/models"
	"github.com/GAMOps/gamops/pkg/parse"
)

// copyTemplate seeds a freshly created drive with the org folder
// structure: copy the template folder into the drive, move everything
// it contains to the drive root, then delete the now-empty copied
// container. The container is deleted exactly once, also when the copy
// turns out to be empty. Any failure aborts only this stage.
func (c *Controller) copyTemplate(ctx context.Context, operator, driveID string) {
	c.Log.Info("Copying folder structure template to the drive")

	res := c.run(ctx,
		"user", operator,
		"copy", "drivefile", c.Policy.TemplateFolderID,
		"excludetrashed", "recursive",
		"copytopfolderpermissions", "false",
		"copyfilepermissions", "false",
		"copysubfolderpermissions", "false",
		"teamdriveparentid", driveID)
	if !res.Success() {
		c.Log.Error("Failed to copy the template folder")
		return
	}

	folderID := parse.FileID(res.Lines)
	if folderID == "" {
		c.Log.Error("Could not identify the copied folder ID")
		return
	}
	c.Log.Infof("Template folder copied with ID %s", folderID)

	listRes := c.run(ctx,
		"user", operator,
		"show", "filelist",
		"query", fmt.Sprintf("'%s' in parents", folderID),
		"fields", "id,name")
	if !listRes.Success() {
		c.Log.Error("Failed to list contents of the copied folder")
		return
	}

	items := parse.FileItems(listRes.Lines)
	if len(items) == 0 {
		c.Log.Warn("Copied folder appears to be empty")
	} else {
		c.Log.Infof("Moving %d items to the drive root", len(items))
		results := batch.Run(ctx, items, c.Workers, func(ctx context.Context, item parse.FileItem) error {
			res := c.run(ctx,
				"user", operator,
				"update", "drivefile", item.ID,
				"teamdriveparent", driveID,
				"removeparent", folderID)
			if !res.Success() {
				return models.ErrCommandFailed
			}
			return nil
		})
		for _, r := range results {
			if r.Err != nil {
				c.Log.Warnf("Failed to move %q to the drive root", r.Item.Name)
			}
		}
	}

	if !c.run(ctx, "user", operator, "delete", "drivefile", folderID).Success() {
		c.Log.Warn("Could not delete the copied template folder")
		return
	}
	c.Log.Info("Folder structure copied to the drive root")
}
