package toolchain_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ferry/internal/adapters/toolchain"
	"go.trai.ch/ferry/internal/core/domain"
	"go.trai.ch/ferry/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBuilder_Commands_Darwin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	b := toolchain.NewBuilder(mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl), domain.DefaultSettings(root))

	cmds, err := b.Commands(domain.PlatformDarwin)
	require.NoError(t, err)

	xcodeDir := filepath.Join(root, "native", "Projects", "Xcode")
	assert.Equal(t, []domain.Command{
		{Name: "xcodebuild", Args: []string{"-scheme", "Bacon"}, Dir: xcodeDir},
		{Name: "xcodebuild", Args: []string{"-scheme", "Bacon64"}, Dir: xcodeDir},
	}, cmds)
}

func TestBuilder_Commands_Windows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	b := toolchain.NewBuilder(mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl), domain.DefaultSettings(root))

	cmds, err := b.Commands(domain.PlatformWindows)
	require.NoError(t, err)
	require.Len(t, cmds, 2)

	msbuild := `C:\Windows\Microsoft.NET\Framework\v4.0.30319\MSBuild.exe`
	vsDir := filepath.Join(root, "native", "Projects", "VisualStudio")
	assert.Equal(t, domain.Command{
		Name: msbuild,
		Args: []string{"Bacon.sln", "/p:Configuration=Release", "/p:Platform=Win32"},
		Dir:  vsDir,
	}, cmds[0])
	assert.Equal(t, "/p:Platform=x64", cmds[1].Args[2])
}

func TestBuilder_Commands_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := toolchain.NewBuilder(mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl), domain.DefaultSettings(t.TempDir()))

	_, err := b.Commands(domain.Platform(0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedPlatform))
}

func TestBuilder_Build_ToleratesToolchainFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExecutor := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(2)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	gomock.InOrder(
		mockExecutor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(errors.New("exit status 65")),
		mockExecutor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil),
	)

	b := toolchain.NewBuilder(mockExecutor, mockLogger, domain.DefaultSettings(t.TempDir()))

	// The second invocation still runs and the build reports success.
	require.NoError(t, b.Build(context.Background(), domain.PlatformDarwin))
}

func TestBuilder_Build_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	b := toolchain.NewBuilder(mocks.NewMockExecutor(ctrl), mocks.NewMockLogger(ctrl), domain.DefaultSettings(t.TempDir()))

	err := b.Build(context.Background(), domain.Platform(42))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedPlatform))
}
