package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitcal/internal"
	"github.com/2beens/fitcal/internal/config"
	"github.com/2beens/fitcal/internal/fitcal/backup"
	"github.com/2beens/fitcal/internal/logging"
)

// fitcal backups cmd
// export:       writes the store to a local backup file
// import:       replaces the store with a backup file
// drive-upload: exports the store and uploads it to google drive

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	command := flag.String("cmd", "export", "command [export | import | drive-upload]")
	file := flag.String("file", "", "backup file; for export, a directory or file path (default: working dir)")
	credentialsFile := flag.String(
		"gd-creds",
		"",
		"google drive service account credentials json (default: FITCAL_DRIVE_CREDENTIALS env var)",
	)
	envFile := flag.String("env-file", ".env", "optional .env file with secrets")
	flag.Parse()

	if err := config.LoadEnvFile(*envFile); err != nil {
		panic(err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logCloser := logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
	})
	defer func() { _ = logCloser.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	server, err := internal.NewServer(ctx, internal.NewServerParams{
		Config:           cfg,
		RedisPassword:    os.Getenv("FITCAL_REDIS_PASS"),
		PostgresPassword: os.Getenv("FITCAL_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new server: %s", err)
	}
	defer server.GracefulShutdown()

	switch *command {
	case "export":
		err = runExport(ctx, server, *file)
	case "import":
		err = runImport(ctx, server, *file)
	case "drive-upload":
		err = runDriveUpload(ctx, server, cfg, *credentialsFile)
	default:
		err = fmt.Errorf("unknown command: %s", *command)
	}
	if err != nil {
		log.Errorf("%s failed: %s", *command, err)
		return
	}
	log.Infof("%s done", *command)
}

func exportNow(ctx context.Context, server *internal.Server) (string, []byte, error) {
	data, err := server.Store().Load(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("load store: %w", err)
	}
	content, err := server.Codec().Export(ctx, data)
	if err != nil {
		return "", nil, err
	}
	log.Printf("exported %d logs", len(data))
	return backup.FileName(time.Now()), content, nil
}

func runExport(ctx context.Context, server *internal.Server, target string) error {
	fileName, content, err := exportNow(ctx, server)
	if err != nil {
		return err
	}

	path := fileName
	if target != "" {
		path = target
		if info, err := os.Stat(target); err == nil && info.IsDir() {
			path = filepath.Join(target, fileName)
		}
	}

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("write backup file: %w", err)
	}
	log.Printf("backup written to: %s", path)
	return nil
}

func runImport(ctx context.Context, server *internal.Server, source string) error {
	if source == "" {
		return fmt.Errorf("backup file not specified, use -file")
	}
	raw, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("read backup file: %w", err)
	}
	data, err := server.Codec().Import(ctx, raw)
	if err != nil {
		return err
	}
	log.Printf("imported %d logs from: %s", len(data), source)
	return nil
}

func runDriveUpload(ctx context.Context, server *internal.Server, cfg *config.Config, credentialsFile string) error {
	var credentials []byte
	if credentialsFile != "" {
		var err error
		credentials, err = os.ReadFile(credentialsFile)
		if err != nil {
			return fmt.Errorf("read credentials file: %w", err)
		}
	} else {
		credentials = []byte(os.Getenv("FITCAL_DRIVE_CREDENTIALS"))
	}
	if len(credentials) == 0 {
		return fmt.Errorf("google drive credentials not set, use -gd-creds or FITCAL_DRIVE_CREDENTIALS")
	}

	driveService, err := backup.NewDriveService(ctx, credentials)
	if err != nil {
		return err
	}

	fileName, content, err := exportNow(ctx, server)
	if err != nil {
		return err
	}

	fileID, err := backup.NewDriveUploader(driveService, cfg.DriveBackupFolder).Upload(ctx, fileName, content)
	if err != nil {
		return err
	}
	log.Printf("backup [%s] uploaded to drive folder [%s], file id: %s", fileName, cfg.DriveBackupFolder, fileID)
	return nil
}
