package command_test

import (
	"io/ioutil"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/tupy-tools/token-cli/internal/command"
)

var _ = Describe("AuthHeader", func() {
	var (
		logger   *stubLogger
		cacheDir string
	)

	BeforeEach(func() {
		logger = &stubLogger{}

		var err error
		cacheDir, err = ioutil.TempDir("", "auth_header_tests")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(cacheDir)
	})

	It("prints the authorization value of a cached token", func() {
		writeTokenFile(cacheDir, "foo", `{"access_token":"abc","token_type":"Bearer","scopes":[],"refresh_token":null,"expires":"2026-01-02T15:04:05"}`)

		command.AuthHeader([]string{"foo"}, cacheDir, logger)

		Expect(logger.printfMessages).To(ConsistOf("Bearer abc"))
	})

	It("fatally logs when there is no cached token", func() {
		Expect(func() {
			command.AuthHeader([]string{"missing"}, cacheDir, logger)
		}).To(Panic())

		Expect(logger.fatalfMessage).To(Equal("No cached token for missing."))
	})

	Context("with the client flag", func() {
		AfterEach(func() {
			os.Unsetenv("TUPY_CLIENT_ID")
			os.Unsetenv("TUPY_CLIENT_SECRET")
		})

		It("prints the basic client value from the environment", func() {
			os.Setenv("TUPY_CLIENT_ID", "some-id")
			os.Setenv("TUPY_CLIENT_SECRET", "some-secret")

			command.AuthHeader([]string{"--client"}, cacheDir, logger)

			// base64 of "some-id:some-secret"
			Expect(logger.printfMessages).To(ConsistOf("Basic c29tZS1pZDpzb21lLXNlY3JldA=="))
		})

		It("fatally logs when the client id is not set", func() {
			Expect(func() {
				command.AuthHeader([]string{"--client"}, cacheDir, logger)
			}).To(Panic())
		})

		It("fatally logs when given an identifier as well", func() {
			Expect(func() {
				command.AuthHeader([]string{"--client", "foo"}, cacheDir, logger)
			}).To(Panic())

			Expect(logger.fatalfMessage).To(Equal("Invalid arguments, expected 0, got 1."))
		})
	})
})
