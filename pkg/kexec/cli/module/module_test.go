package module

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/redhat-developer/kexec/pkg/config"
	envcontext "github.com/redhat-developer/kexec/pkg/config/context"
	"github.com/redhat-developer/kexec/pkg/exec"
	"github.com/redhat-developer/kexec/pkg/kclient"
	"github.com/redhat-developer/kexec/pkg/kexec/genericclioptions/clientset"
	"github.com/redhat-developer/kexec/pkg/kexec/util"
)

const argsFile = "/tmp/ansible-tmp/args"

var _ = Describe("kexec module", func() {
	var (
		ctrl       *gomock.Controller
		fs         afero.Fs
		execClient *exec.MockClient
		stdout     bytes.Buffer
		envConfig  config.Configuration
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		fs = afero.NewMemMapFs()
		execClient = exec.NewMockClient(ctrl)
		stdout.Reset()
		envConfig = config.Configuration{}
	})

	writeArgs := func(content string) {
		Expect(afero.WriteFile(fs, argsFile, []byte(content), 0600)).To(Succeed())
	}

	run := func() (map[string]interface{}, error) {
		cmd := NewCmdModule(RecommendedCommandName, "kexec "+RecommendedCommandName, clientset.Clientset{
			FS:               fs,
			KubernetesClient: kclient.NewMockClientInterface(ctrl),
			ExecClient:       execClient,
			Stdout:           &stdout,
			Stderr:           GinkgoWriter,
		})
		cmd.SetArgs([]string{argsFile})
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		err := cmd.ExecuteContext(envcontext.WithEnvConfig(context.Background(), envConfig))

		response := map[string]interface{}{}
		Expect(json.Unmarshal(stdout.Bytes(), &response)).To(Succeed(), "the response must be a single JSON object: %q", stdout.String())
		return response, err
	}

	When("the command succeeds", func() {
		BeforeEach(func() {
			writeArgs(`{"ANSIBLE_MODULE_ARGS": {"namespace": "zuul", "pod": "zuul-scheduler", "command": "zuul-scheduler full-reconfigure", "api_key": "sha256~abc"}}`)
			execClient.EXPECT().ExecuteCommand(gomock.Any(), exec.Params{
				Namespace: "zuul",
				Pod:       "zuul-scheduler",
				Command:   "zuul-scheduler full-reconfigure",
			}, gomock.Nil(), gomock.Nil()).Return(exec.Result{
				Changed:     true,
				Stdout:      "reconfigured\n",
				StdoutLines: []string{"reconfigured"},
				StderrLines: []string{},
			}, nil)
		})

		It("should report the output", func() {
			response, err := run()
			Expect(err).ToNot(HaveOccurred())
			Expect(response).To(HaveKeyWithValue("changed", true))
			Expect(response).ToNot(HaveKey("failed"))
			Expect(response).To(HaveKeyWithValue("stdout", "reconfigured\n"))
			Expect(response).To(HaveKeyWithValue("stdout_lines", ConsistOf("reconfigured")))
			Expect(response).To(HaveKeyWithValue("stderr_lines", BeEmpty()))
			Expect(response).To(HaveKeyWithValue("rc", BeNumerically("==", 0)))
		})

		It("should not log the api key", func() {
			response, err := run()
			Expect(err).ToNot(HaveOccurred())
			Expect(response).To(HaveKeyWithValue("invocation", HaveKeyWithValue("module_args", SatisfyAll(
				HaveKeyWithValue("api_key", "VALUE_SPECIFIED_IN_NO_LOG_PARAMETER"),
				HaveKeyWithValue("pod", "zuul-scheduler"),
			))))
		})
	})

	When("the command exits with a non-zero status", func() {
		BeforeEach(func() {
			writeArgs(`{"pod": "zuul-scheduler", "command": "false"}`)
			execClient.EXPECT().ExecuteCommand(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil()).Return(exec.Result{
				Changed:     true,
				RC:          1,
				Failed:      true,
				Msg:         `command "false" terminated with exit code 1`,
				StdoutLines: []string{},
				StderrLines: []string{},
			}, nil)
		})

		It("should report a failure with the exit status", func() {
			response, err := run()
			Expect(err).To(Equal(util.ExitCodeError{Code: 1}))
			Expect(response).To(HaveKeyWithValue("failed", true))
			Expect(response).To(HaveKeyWithValue("changed", true))
			Expect(response).To(HaveKeyWithValue("rc", BeNumerically("==", 1)))
			Expect(response).To(HaveKeyWithValue("msg", ContainSubstring("exit code 1")))
		})
	})

	When("the pod does not exist", func() {
		BeforeEach(func() {
			writeArgs(`{"pod": "missing", "command": "ls"}`)
			execClient.EXPECT().ExecuteCommand(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil()).Return(exec.Result{}, &kclient.PodNotFoundError{Name: "missing", Namespace: "default"})
		})

		It("should report a failure", func() {
			response, err := run()
			Expect(err).To(Equal(util.ExitCodeError{Code: 1}))
			Expect(response).To(HaveKeyWithValue("failed", true))
			Expect(response).To(HaveKeyWithValue("changed", false))
			Expect(response).To(HaveKeyWithValue("msg", `pod "missing" not found in namespace "default"`))
			Expect(response).ToNot(HaveKey("stdout"))
		})
	})

	When("the stream fails", func() {
		BeforeEach(func() {
			writeArgs(`{"pod": "zuul-scheduler", "command": "ls"}`)
			execClient.EXPECT().ExecuteCommand(gomock.Any(), gomock.Any(), gomock.Nil(), gomock.Nil()).Return(exec.Result{}, errors.New("failed to execute on pod default/zuul-scheduler: connection reset"))
		})

		It("should report the error", func() {
			response, err := run()
			Expect(err).To(HaveOccurred())
			Expect(response).To(HaveKeyWithValue("msg", ContainSubstring("connection reset")))
		})
	})

	When("running in check mode", func() {
		BeforeEach(func() {
			writeArgs(`{"pod": "zuul-scheduler", "command": "ls", "_ansible_check_mode": true}`)
		})

		It("should skip the command", func() {
			response, err := run()
			Expect(err).ToNot(HaveOccurred())
			Expect(response).To(HaveKeyWithValue("skipped", true))
			Expect(response).To(HaveKeyWithValue("changed", false))
			Expect(response).To(HaveKeyWithValue("msg", checkModeMsg))
		})
	})

	DescribeTable("invalid arguments should be reported without running anything",
		func(content string, msg string) {
			writeArgs(content)
			response, err := run()
			Expect(err).To(Equal(util.ExitCodeError{Code: 1}))
			Expect(response).To(HaveKeyWithValue("failed", true))
			Expect(response).To(HaveKeyWithValue("msg", ContainSubstring(msg)))
		},
		Entry("missing pod", `{"command": "ls"}`, "pod is required"),
		Entry("missing command", `{"pod": "zuul-scheduler"}`, "command is required"),
		Entry("unterminated quote", `{"pod": "zuul-scheduler", "command": "echo 'oops"}`, "unable to parse command"),
		Entry("unknown argument", `{"pod": "zuul-scheduler", "command": "ls", "tty": true}`, "unsupported module arguments"),
		Entry("conflicting aliases", `{"pod": "p", "command": "ls", "ca_cert": "/a", "ssl_ca_cert": "/b"}`, "mutually exclusive"),
	)

	When("the arguments file does not exist", func() {
		It("should report a failure without invocation", func() {
			response, err := run()
			Expect(err).To(Equal(util.ExitCodeError{Code: 1}))
			Expect(response).To(HaveKeyWithValue("msg", ContainSubstring("unable to read module arguments")))
			Expect(response).ToNot(HaveKey("invocation"))
		})
	})

	When("K8S_AUTH_VERIFY_SSL is invalid in the environment", func() {
		BeforeEach(func() {
			envConfig.VerifySSL = "sometimes"
			writeArgs(`{"pod": "zuul-scheduler", "command": "ls"}`)
		})

		It("should report a failure", func() {
			response, err := run()
			Expect(err).To(Equal(util.ExitCodeError{Code: 1}))
			Expect(response).To(HaveKeyWithValue("msg", ContainSubstring("K8S_AUTH_VERIFY_SSL")))
		})
	})
})
