package cloudwriter

// CloudWriter buffers an export object and uploads it on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

// CloudWriterFactory creates writers for one storage backend.
type CloudWriterFactory interface {
	NewWriter(bucket, objectPath, contentType string) (CloudWriter, error)
}
