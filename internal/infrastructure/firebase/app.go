package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Clients bundles the Firestore and Storage handles obtained from one
// Firebase app credential.
type Clients struct {
	Firestore *firestore.Client
	Bucket    *storage.BucketHandle
}

// NewClients initializes the Firebase app and derives the Firestore client
// and the default storage bucket from it. Credentials come from
// FIREBASE_SERVICE_ACCOUNT_JSON (deploy) or FIREBASE_SERVICE_ACCOUNT_PATH
// (local); with neither set, application default credentials apply.
func NewClients(ctx context.Context, projectID, bucketName string) (*Clients, error) {
	var opts []option.ClientOption

	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("service account file does not exist: %s", serviceAccountPath)
		}
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{
		ProjectID:     projectID,
		StorageBucket: bucketName,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firestore client: %w", err)
	}

	storageClient, err := app.Storage(ctx)
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to create Storage client: %w", err)
	}

	bucket, err := storageClient.DefaultBucket()
	if err != nil {
		firestoreClient.Close()
		return nil, fmt.Errorf("failed to resolve storage bucket: %w", err)
	}

	return &Clients{
		Firestore: firestoreClient,
		Bucket:    bucket,
	}, nil
}

func (c *Clients) Close() {
	if c.Firestore != nil {
		c.Firestore.Close()
	}
}
