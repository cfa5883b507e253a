package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// NewSSMClient builds a Parameter Store client from the default AWS
// credential chain.
func NewSSMClient(ctx context.Context) (*ssm.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(awsCfg), nil
}

// LoadSSM overlays every parameter below parameterPath onto cfg. The last
// path element becomes the key, so /voidpdev/prod/DATABASE_URL sets
// DATABASE_URL. Keys already present in cfg win over Parameter Store.
func LoadSSM(ctx context.Context, client ssm.GetParametersByPathAPIClient, parameterPath string, cfg map[string]string) (int, error) {
	if parameterPath == "" {
		return 0, nil
	}

	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(parameterPath),
		Recursive:      aws.Bool(true),
		WithDecryption: aws.Bool(true),
	})

	loaded := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return loaded, fmt.Errorf("read parameters under %s: %w", parameterPath, err)
		}

		for _, param := range page.Parameters {
			key := path.Base(strings.TrimSuffix(aws.ToString(param.Name), "/"))
			if key == "" || key == "." || key == "/" {
				continue
			}
			if existing, ok := cfg[key]; ok && existing != "" {
				log.Debug().Str("key", key).Msg("Keeping environment value over SSM parameter")
				continue
			}
			cfg[key] = aws.ToString(param.Value)
			loaded++
		}
	}

	return loaded, nil
}
