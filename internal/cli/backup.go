package cli

import (
	"fmt"
	"path/filepath"

	"github.com/ShivamParikh1/HabitAppV11/internal/backup"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	if ctx.StatePath == "" {
		return fmt.Errorf("backups are only supported for file-backed storage")
	}
	mgr := backup.NewManager(ctx.StatePath)
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}
	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	if ctx.StatePath == "" {
		return fmt.Errorf("backups are only supported for file-backed storage")
	}
	mgr := backup.NewManager(ctx.StatePath)
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Println(titleStyle.Render("Backups"))
	for _, b := range backups {
		fmt.Printf("%s  %s  %d bytes\n", b.Timestamp.Format("2006-01-02 15:04"), filepath.Base(b.Path), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup file name to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if ctx.StatePath == "" {
		return fmt.Errorf("backups are only supported for file-backed storage")
	}
	mgr := backup.NewManager(ctx.StatePath)
	if err := mgr.RestoreBackup(filepath.Join(mgr.GetBackupDir(), c.Name)); err != nil {
		return err
	}
	fmt.Println("Restored. Re-run habitapp to load the restored state.")
	return nil
}
