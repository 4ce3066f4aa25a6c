package file

import (
	"encoding/json"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileOperations defines methods for reading from and writing to files.
type FileOperations interface {
	IsFileExists(filePath string) (bool, error)
	ReadFileRaw(filePath string) ([]byte, error)
	ReadJsonFile(filePath string, v any) error
	ReadYamlFile(filePath string, v any) error
	WriteJsonFile(filePath string, data any) error
}

// FileService implements the FileOperations interface using standard file operations.
type FileService struct{}

// NewFileService creates a new instance of FileService.
func NewFileService() *FileService {
	return &FileService{}
}

// IsFileExists checks if the file exists and returns a boolean and error.
func (fs *FileService) IsFileExists(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false, nil
	}

	// checking err == nil because of permission related errors
	return err == nil, err
}

// ReadFileRaw reads the contents of the file at filePath and returns it as a byte array.
func (fs *FileService) ReadFileRaw(filePath string) ([]byte, error) {
	return os.ReadFile(filePath)
}

// ReadJsonFile reads and unmarshals JSON data from the given file.
func (fs *FileService) ReadJsonFile(filePath string, v any) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(v)
}

// ReadYamlFile reads and unmarshals YAML data from the given file.
func (fs *FileService) ReadYamlFile(filePath string, v any) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

// WriteJsonFile marshals data as indented JSON and writes it to the given file,
// creating parent directories as needed.
func (fs *FileService) WriteJsonFile(filePath string, data any) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return err
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, raw, 0o644)
}
