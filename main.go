package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"ami-encrypter/config"
	"ami-encrypter/driverset"
	"ami-encrypter/encrypter"
	"ami-encrypter/manifest"
	"ami-encrypter/resources"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const abortedExitCode = 130

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := logrus.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand(logger, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	if ctx.Err() != nil {
		fmt.Fprintln(stderr, "User aborted script!") //nolint:errcheck
		return abortedExitCode
	}

	logger.Error(err)
	return 1
}

func newRootCommand(logger *logrus.Logger, stdout io.Writer) *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)

	var configFile string

	cmd := &cobra.Command{
		Use:   "ami-encrypter",
		Short: "Produce an encrypted copy of an AMI",
		Long: `Copies an AMI with encrypted snapshots. AMIs owned by another account are first
booted, stopped and imaged into an unencrypted AMI owned by the caller, which is
then copied and deregistered. The id of the encrypted AMI is written to
<JOB_NAME>_ID.txt or <Name>_AMI_ID.txt and a YAML summary is printed to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if configFile != "" {
				v.SetConfigFile(configFile)
				err := v.ReadInConfig()
				if err != nil {
					return fmt.Errorf("reading config file %s: %w", configFile, err)
				}
			}

			c, err := config.New(v)
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			if c.Debug {
				logger.SetLevel(logrus.DebugLevel)
			}

			ds, err := driverset.NewEncryptionDriverSet(logger, c)
			if err != nil {
				return err
			}

			result, err := encrypter.New(logger, c).Encrypt(cmd.Context(), ds)
			if err != nil {
				return err
			}

			logger.Printf("encrypted AMI %s is available as %s", result.Ami.ID, result.Ami.Name)

			return manifest.New(c, result).Write(stdout)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "YAML or JSON file providing any of the options below")
	flags.String("source-image-id", "", "AMI to copy (required)")
	flags.String("name", "", "base name of the new AMI (default AMI-<uuid>)")
	flags.String("description", "", "description of the new AMI")
	flags.String("region", "", "region to create the AMI in (default $AWS_DEFAULT_REGION)")
	flags.String("source-region", "", "region of the source AMI (default --region)")
	flags.Bool("encrypted", true, "encrypt the snapshots of the copy")
	flags.String("kms-key-id", "", "KMS key id, key ARN, alias name or alias ARN (default: the account's EBS key)")
	flags.String("os-type", config.LinuxOSType, "operating system of the source AMI: linux or windows")
	flags.String("iam-instance-profile", "", "instance profile for the temporary instance")
	flags.String("subnet-id", "", "subnet for the temporary instance (default: random from $AWS_BACKEND_SUBNET_IDS)")
	flags.String("instance-type", resources.DefaultInstanceType, "type of the temporary instance")
	flags.StringToString("instance-tag", nil, "tag applied to the temporary instance and created AMIs, as key=value (repeatable)")
	flags.String("account-id", "", "caller's account id, skipping account resolution")
	flags.String("output-dir", ".", "directory for the result file")
	flags.String("result-bucket", "", "S3 bucket to upload the result file to")
	flags.String("result-prefix", "", "key prefix for the uploaded result file")
	flags.Bool("debug", false, "log AWS requests")

	bindings := map[string]string{
		config.SourceImageIDKey:      "source-image-id",
		config.NameKey:               "name",
		config.DescriptionKey:        "description",
		config.RegionKey:             "region",
		config.SourceRegionKey:       "source-region",
		config.EncryptedKey:          "encrypted",
		config.KmsKeyIdKey:           "kms-key-id",
		config.OSTypeKey:             "os-type",
		config.IamInstanceProfileKey: "iam-instance-profile",
		config.SubnetIDKey:           "subnet-id",
		config.InstanceTypeKey:       "instance-type",
		config.InstanceTagsKey:       "instance-tag",
		config.AccountIDKey:          "account-id",
		config.OutputDirKey:          "output-dir",
		config.ResultBucketKey:       "result-bucket",
		config.ResultPrefixKey:       "result-prefix",
		config.DebugKey:              "debug",
	}
	for key, flagName := range bindings {
		_ = v.BindPFlag(key, flags.Lookup(flagName))
	}

	return cmd
}
